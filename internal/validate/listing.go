package validate

import (
	"strings"

	"medcatalog/internal/domain"
)

// Listing checks the required listing fields and normalizes highlights.
// Unknown payload keys are dropped. The input is never modified.
func Listing(raw any) (domain.ListingFields, error) {
	m, err := object(raw)
	if err != nil {
		return domain.ListingFields{}, err
	}

	var (
		out  domain.ListingFields
		verr Error
	)
	required := []struct {
		key string
		dst *string
	}{
		{"title", &out.Title},
		{"location", &out.Location},
		{"category", &out.Category},
		{"price", &out.Price},
		{"description", &out.Description},
	}
	for _, f := range required {
		s, ok := Text(m[f.key])
		if !ok {
			verr.add(f.key)
			continue
		}
		*f.dst = s
	}
	out.Highlights = Highlights(m["highlights"])

	if err := verr.orNil(); err != nil {
		return out, err
	}
	return out, nil
}

// Highlights keeps the non-blank trimmed strings of a JSON array, in order.
// Anything that is not an array yields an empty list.
func Highlights(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, _ := item.(string)
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
