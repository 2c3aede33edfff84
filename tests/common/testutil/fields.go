//go:build unit

package testutil

// Field sets or removes (value == nil) one key of a payload map.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
