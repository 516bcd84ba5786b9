//go:build unit || e2e

package testutil

// Field returns a mutation that sets (or, for nil, removes) one key of a
// request map. Combined with DtoMap to build invalid request variants.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
