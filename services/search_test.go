package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/summer0102/real-estate-showcase/models"
)

func TestRefineMatchesTitleAddressDescription(t *testing.T) {
	props := []models.Property{
		{Title: "Sunny Loft", Address: "12 Hill Rd", Description: "bright corner unit"},
		{Title: "Garden View", Address: "88 Sunset Blvd", Description: "quiet"},
		{Title: "Downtown Studio", Address: "5 Main St", Description: "near the sun deck"},
		{Title: "Riverside Flat", Address: "3 Bridge Ln", Description: "no match here"},
	}

	got := Refine(props, "sun")

	assert.Len(t, got, 3)
	assert.Equal(t, "Sunny Loft", got[0].Title)
	assert.Equal(t, "Garden View", got[1].Title)
	assert.Equal(t, "Downtown Studio", got[2].Title)
}

func TestRefineCaseInsensitive(t *testing.T) {
	props := []models.Property{
		{Title: "SUNNY LOFT"},
		{Title: "garden view"},
	}

	got := Refine(props, "Sunny")
	assert.Len(t, got, 1)
	assert.Equal(t, "SUNNY LOFT", got[0].Title)
}

func TestRefineBlankQueryIsIdentity(t *testing.T) {
	props := []models.Property{
		{Title: "Sunny Loft"},
		{Title: "Garden View"},
	}

	assert.Equal(t, props, Refine(props, ""))
	assert.Equal(t, props, Refine(props, "   "))
	assert.Equal(t, props, Refine(props, "\t\n"))
}

func TestRefineIdempotent(t *testing.T) {
	props := []models.Property{
		{Title: "Sunny Loft"},
		{Title: "Garden View"},
		{Title: "Sunset Villa"},
	}

	once := Refine(props, "sun")
	twice := Refine(once, "sun")

	assert.Equal(t, once, twice)
}

func TestRefinePreservesOrder(t *testing.T) {
	props := []models.Property{
		{Title: "C sun"},
		{Title: "A sun"},
		{Title: "B sun"},
	}

	got := Refine(props, "sun")
	assert.Equal(t, []string{"C sun", "A sun", "B sun"},
		[]string{got[0].Title, got[1].Title, got[2].Title})
}

func TestRefineNoMatches(t *testing.T) {
	props := []models.Property{{Title: "Garden View"}}

	got := Refine(props, "penthouse")
	assert.Empty(t, got)
}

func TestRefineTrimsQuery(t *testing.T) {
	props := []models.Property{
		{Title: "Sunny Loft"},
		{Title: "Garden View"},
	}

	got := Refine(props, "  sunny  ")
	assert.Len(t, got, 1)
	assert.Equal(t, "Sunny Loft", got[0].Title)
}
