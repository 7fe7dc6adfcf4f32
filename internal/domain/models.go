package domain

import "time"

// TimeLayout matches the ISO-8601 form the admin console parses (millisecond UTC).
const TimeLayout = "2006-01-02T15:04:05.000Z"

func Timestamp(t time.Time) string { return t.UTC().Format(TimeLayout) }

// Listing is a facility catalog entry. Field names are read by the admin console.
type Listing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Category    string   `json:"category"` // general | dental | rehab (not enforced)
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

func (l Listing) RecordID() string { return l.ID }

// ListingFields is the sanitized, writable part of a Listing.
type ListingFields struct {
	Title       string
	Location    string
	Category    string
	Price       string
	Description string
	Highlights  []string
}

// Apply overwrites the writable fields of l.
func (f ListingFields) Apply(l *Listing) {
	l.Title = f.Title
	l.Location = f.Location
	l.Category = f.Category
	l.Price = f.Price
	l.Description = f.Description
	l.Highlights = append([]string{}, f.Highlights...)
}
