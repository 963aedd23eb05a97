package services

import (
	"strings"

	"github.com/summer0102/real-estate-showcase/models"
)

// Refine narrows an already-fetched result set by a free-text query
// without another round trip to the store. A property matches when its
// title, address, or description contains the trimmed query as a
// case-insensitive substring. A blank query returns the input unchanged.
// Order is preserved, so refining composes with server-side filtering.
func Refine(properties []models.Property, query string) []models.Property {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return properties
	}

	matched := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Address), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	return matched
}
