package postgres

import (
	"database/sql"
	"fmt"

	"github.com/bytedance/sonic"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// jsonbValue serializes an embedded sequence for a jsonb column. Nil
// slices are stored as empty arrays so reads never see SQL NULL.
func jsonbValue(v any) ([]byte, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb column: %w", err)
	}
	return raw, nil
}

func fromJSONB(raw []byte, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal jsonb column: %w", err)
	}
	return nil
}
