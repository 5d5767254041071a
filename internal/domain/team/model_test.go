package team

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSeasonRange(t *testing.T) {
	save := Team{StartedOn: date("2023-07-01")}

	tests := []struct {
		name     string
		ref      string
		wantFrom string
		wantTo   string
	}{
		{name: "inside first season", ref: "2023-10-01", wantFrom: "2023-07-01", wantTo: "2024-07-01"},
		{name: "before anniversary", ref: "2024-05-01", wantFrom: "2023-07-01", wantTo: "2024-07-01"},
		{name: "on anniversary", ref: "2024-07-01", wantFrom: "2024-07-01", wantTo: "2025-07-01"},
		{name: "later season", ref: "2026-01-15", wantFrom: "2025-07-01", wantTo: "2026-07-01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from, to := save.SeasonRange(date(tc.ref))
			if !from.Equal(date(tc.wantFrom)) || !to.Equal(date(tc.wantTo)) {
				t.Fatalf("SeasonRange(%s) = [%s, %s), want [%s, %s)",
					tc.ref, from.Format("2006-01-02"), to.Format("2006-01-02"), tc.wantFrom, tc.wantTo)
			}
		})
	}
}

func TestSeasonLabel(t *testing.T) {
	save := Team{StartedOn: date("2023-07-01")}
	if got := save.SeasonLabel(date("2023-10-01")); got != "2023/24" {
		t.Fatalf("unexpected label: %s", got)
	}

	calendarSave := Team{StartedOn: date("2024-01-01")}
	if got := calendarSave.SeasonLabel(date("2024-06-01")); got != "2024" {
		t.Fatalf("unexpected calendar-year label: %s", got)
	}
}

func TestValidate(t *testing.T) {
	valid := Team{
		UserID:      "u1",
		Name:        "FC Test",
		StartedOn:   date("2023-07-01"),
		CurrentlyOn: date("2023-07-01"),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rewound := valid
	rewound.CurrentlyOn = date("2023-06-01")
	if err := rewound.Validate(); err == nil {
		t.Fatal("expected current date before start date to be rejected")
	}
}
