package player

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

func datePtr(value string) *time.Time {
	t := date(value)
	return &t
}

func TestResolveStatusContractLifecycle(t *testing.T) {
	contracts := []Contract{{
		ID:        "c1",
		SignedOn:  datePtr("2024-06-01"),
		StartedOn: date("2024-07-01"),
		EndedOn:   date("2025-06-30"),
	}}

	tests := []struct {
		name string
		ref  string
		want Status
	}{
		{name: "before start is pending", ref: "2024-06-15", want: StatusPending},
		{name: "inside term is active", ref: "2024-08-01", want: StatusActive},
		{name: "first day of term is active", ref: "2024-07-01", want: StatusActive},
		{name: "after expiry is none", ref: "2025-07-01", want: StatusNone},
		{name: "expiry day is none", ref: "2025-06-30", want: StatusNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveStatus("FC Test", contracts, nil, nil, date(tc.ref))
			if got != tc.want {
				t.Fatalf("ResolveStatus(%s) = %q, want %q", tc.ref, got, tc.want)
			}
		})
	}
}

func TestResolveStatusInjuryOverridesActive(t *testing.T) {
	contracts := []Contract{{
		SignedOn:  datePtr("2024-06-01"),
		StartedOn: date("2024-07-01"),
		EndedOn:   date("2025-06-30"),
	}}
	injuries := []Injury{{
		StartedOn: date("2024-08-01"),
		EndedOn:   date("2024-09-01"),
	}}

	if got := ResolveStatus("FC Test", contracts, injuries, nil, date("2024-08-15")); got != StatusInjured {
		t.Fatalf("expected Injured, got %q", got)
	}
	if got := ResolveStatus("FC Test", contracts, injuries, nil, date("2024-09-01")); got != StatusActive {
		t.Fatalf("expected Active after recovery window, got %q", got)
	}
}

func TestResolveStatusUnsignedContractIsFreeAgent(t *testing.T) {
	contracts := []Contract{{
		StartedOn: date("2024-07-01"),
		EndedOn:   date("2025-06-30"),
	}}

	if got := ResolveStatus("FC Test", contracts, nil, nil, date("2024-08-01")); got != StatusNone {
		t.Fatalf("expected no status for unsigned contract, got %q", got)
	}
}

func TestResolveStatusLastSignedContractGoverns(t *testing.T) {
	contracts := []Contract{
		{
			SignedOn:  datePtr("2022-06-01"),
			StartedOn: date("2022-07-01"),
			EndedOn:   date("2024-06-30"),
		},
		{
			SignedOn:  datePtr("2024-03-01"),
			StartedOn: date("2024-07-01"),
			EndedOn:   date("2026-06-30"),
		},
	}

	if got := ResolveStatus("FC Test", contracts, nil, nil, date("2024-08-01")); got != StatusActive {
		t.Fatalf("expected renewal to govern, got %q", got)
	}
	if got := ResolveStatus("FC Test", contracts, nil, nil, date("2024-05-01")); got != StatusPending {
		t.Fatalf("expected pending before renewal starts, got %q", got)
	}
}

func TestResolveStatusOutboundLoan(t *testing.T) {
	contracts := []Contract{{
		SignedOn:  datePtr("2024-06-01"),
		StartedOn: date("2024-07-01"),
		EndedOn:   date("2026-06-30"),
	}}
	loans := []Loan{{
		SignedOn:    datePtr("2024-12-15"),
		StartedOn:   date("2025-01-01"),
		EndedOn:     date("2025-06-30"),
		Origin:      "FC Test",
		Destination: "Elsewhere United",
	}}

	if got := ResolveStatus("FC Test", contracts, nil, loans, date("2025-02-01")); got != StatusLoaned {
		t.Fatalf("expected Loaned, got %q", got)
	}
}

func TestResolveStatusInboundLoanStaysActive(t *testing.T) {
	contracts := []Contract{{
		SignedOn:  datePtr("2024-06-01"),
		StartedOn: date("2024-07-01"),
		EndedOn:   date("2026-06-30"),
	}}
	loans := []Loan{{
		SignedOn:    datePtr("2024-12-15"),
		StartedOn:   date("2025-01-01"),
		EndedOn:     date("2025-06-30"),
		Origin:      "Elsewhere United",
		Destination: "FC Test",
	}}

	if got := ResolveStatus("FC Test", contracts, nil, loans, date("2025-02-01")); got != StatusActive {
		t.Fatalf("expected Active for inbound loan, got %q", got)
	}
}

func TestResolveStatusUnsignedLoanIgnored(t *testing.T) {
	contracts := []Contract{{
		SignedOn:  datePtr("2024-06-01"),
		StartedOn: date("2024-07-01"),
		EndedOn:   date("2026-06-30"),
	}}
	loans := []Loan{{
		StartedOn:   date("2025-01-01"),
		EndedOn:     date("2025-06-30"),
		Origin:      "FC Test",
		Destination: "Elsewhere United",
	}}

	if got := ResolveStatus("FC Test", contracts, nil, loans, date("2025-02-01")); got != StatusActive {
		t.Fatalf("expected unsigned loan to be ignored, got %q", got)
	}
}

func TestResolveStatusIsIdempotent(t *testing.T) {
	contracts := []Contract{{
		SignedOn:  datePtr("2024-06-01"),
		StartedOn: date("2024-07-01"),
		EndedOn:   date("2025-06-30"),
	}}
	injuries := []Injury{{
		StartedOn: date("2024-08-01"),
		EndedOn:   date("2024-09-01"),
	}}
	ref := date("2024-08-15")

	first := ResolveStatus("FC Test", contracts, injuries, nil, ref)
	second := ResolveStatus("FC Test", contracts, injuries, nil, ref)
	if first != second {
		t.Fatalf("resolver drifted: %q then %q", first, second)
	}
}

func TestLosesKitNumber(t *testing.T) {
	tests := []struct {
		name string
		prev Status
		next Status
		want bool
	}{
		{name: "active to none", prev: StatusActive, next: StatusNone, want: true},
		{name: "loaned to pending", prev: StatusLoaned, next: StatusPending, want: true},
		{name: "active to injured", prev: StatusActive, next: StatusInjured, want: true},
		{name: "active to loaned", prev: StatusActive, next: StatusLoaned, want: false},
		{name: "pending to active", prev: StatusPending, next: StatusActive, want: false},
		{name: "none to none", prev: StatusNone, next: StatusNone, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LosesKitNumber(tc.prev, tc.next); got != tc.want {
				t.Fatalf("LosesKitNumber(%q, %q) = %v, want %v", tc.prev, tc.next, got, tc.want)
			}
		})
	}
}
