// Package attrs reads values out of the flat key-value attribute slices
// carried on audit events, shaped like slog arguments:
// [key1, value1, key2, value2, ...].
package attrs

// ExtractString returns the string value that follows key, or "" when the
// key is absent or its value is not a string. A trailing key with no value
// is ignored.
func ExtractString(attrs []any, key string) string {
	for i := 0; i+1 < len(attrs); i += 2 {
		k, ok := attrs[i].(string)
		if !ok || k != key {
			continue
		}
		if v, ok := attrs[i+1].(string); ok {
			return v
		}
	}
	return ""
}
