package compliance

import "strings"

// fieldState describes what a check found when reading a field.
type fieldState int

const (
	fieldMissing fieldState = iota
	fieldOK
	fieldMalformed
)

// listField reads a field expected to hold a list. A present value of any
// other shape is malformed and treated as absent by callers.
func listField(fields map[string]any, key string) ([]any, fieldState) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return nil, fieldMissing
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fieldMalformed
	}
	return list, fieldOK
}

// stringField reads a field expected to hold a string. Empty strings count
// as missing.
func stringField(fields map[string]any, key string) (string, fieldState) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return "", fieldMissing
	}
	s, ok := raw.(string)
	if !ok {
		return "", fieldMalformed
	}
	if strings.TrimSpace(s) == "" {
		return "", fieldMissing
	}
	return s, fieldOK
}

// boolField reads a field expected to hold a boolean.
func boolField(fields map[string]any, key string) (bool, fieldState) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return false, fieldMissing
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fieldMalformed
	}
	return b, fieldOK
}

// numberField reads a field expected to hold a number. JSON decoding yields
// float64; literal ints are accepted for fields built in code.
func numberField(fields map[string]any, key string) (float64, fieldState) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return 0, fieldMissing
	}
	switch n := raw.(type) {
	case float64:
		return n, fieldOK
	case int:
		return float64(n), fieldOK
	}
	return 0, fieldMalformed
}

// entryName extracts a person's name from a list entry, which may be a bare
// string or a map with a "name" key. Returns "" when no name is present.
func entryName(entry any) string {
	switch e := entry.(type) {
	case string:
		return strings.TrimSpace(e)
	case map[string]any:
		if name, ok := e["name"].(string); ok {
			return strings.TrimSpace(name)
		}
	}
	return ""
}

// entryString extracts an arbitrary string attribute from a map entry.
func entryString(entry any, key string) string {
	m, ok := entry.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// entryBool extracts a boolean attribute from a map entry.
func entryBool(entry any, key string) bool {
	m, ok := entry.(map[string]any)
	if !ok {
		return false
	}
	b, _ := m[key].(bool)
	return b
}

// namesOf collects the lowercased non-empty names from a list of entries.
func namesOf(list []any) []string {
	var names []string
	for _, entry := range list {
		if name := entryName(entry); name != "" {
			names = append(names, strings.ToLower(name))
		}
	}
	return names
}
