package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Error reports the payload fields that failed validation, in check order.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

func (e *Error) add(field string) { e.Fields = append(e.Fields, field) }

func (e *Error) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Text accepts a string that is non-empty after trimming.
func Text(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a record identifier taken from a path.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// object is the first gate for every payload: only JSON objects are accepted.
func object(raw any) (map[string]any, error) {
	m, ok := raw.(map[string]any)
	if !ok || m == nil {
		return nil, &Error{Fields: []string{"body"}}
	}
	return m, nil
}

// optionalText trims a string field that may be absent. Present non-strings fail.
func optionalText(m map[string]any, key string) (string, bool, bool) {
	v, present := m[key]
	if !present || v == nil {
		return "", false, true
	}
	s, ok := v.(string)
	if !ok {
		return "", true, false
	}
	return strings.TrimSpace(s), true, true
}
