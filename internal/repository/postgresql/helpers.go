package postgresql

import (
	"sort"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

// dateParam turns an optional date into a DATE parameter.
func dateParam(d *civil.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// sortedKeys keeps generated UPDATE statements stable.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
