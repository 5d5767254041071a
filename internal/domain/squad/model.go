package squad

import (
	"fmt"
	"strings"
)

// Squad is a named grouping of players within a save, e.g. "First Team"
// or "U21".
type Squad struct {
	ID        string
	TeamID    string
	Name      string
	PlayerIDs []string
}

func (s Squad) Validate() error {
	if strings.TrimSpace(s.TeamID) == "" {
		return fmt.Errorf("squad team id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("squad name is required")
	}
	seen := make(map[string]struct{}, len(s.PlayerIDs))
	for _, id := range s.PlayerIDs {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("squad lists player %s twice", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
