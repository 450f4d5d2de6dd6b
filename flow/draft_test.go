package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDraftOmitsBrand(t *testing.T) {
	d := Draft{
		Title:       "Jordan 23",
		Description: "Classic",
		MainImageID: 9,
		GalleryIDs:  []int64{10, 11},
		Sizes:       []string{"41", "42"},
		Color:       "white",
		Upper:       "leather",
		Sole:        "rubber",
		Usage:       []string{"running"},
		SKU:         "NK-J23-WB-M",
		Price:       "565000",
		Tags:        []string{"sale"},
		Brand:       "Nike",
	}

	out := BuildDraft(d)
	assert.Equal(t, d.Title, out.Title)
	assert.Equal(t, d.SKU, out.SKU)
	assert.Equal(t, d.Price, out.Price)
	assert.Equal(t, d.Sizes, out.Sizes)
	assert.Equal(t, d.Usage, out.Usage)
	assert.Equal(t, d.MainImageID, out.MainImageID)
	assert.Equal(t, d.GalleryIDs, out.GalleryIDs)
}

func TestRenderSummaryPlaceholders(t *testing.T) {
	out := RenderSummary(Draft{Title: "Jordan 23", Color: "white"})

	assert.Contains(t, out, "Title: Jordan 23")
	assert.Contains(t, out, "Sizes: —")
	assert.Contains(t, out, "Usage: —")
	assert.Contains(t, out, "Tags: —")
	assert.Contains(t, out, "Gallery images: —")
	assert.Contains(t, out, msgConfirmFooter)
}

func TestRenderSummaryJoinsValues(t *testing.T) {
	out := RenderSummary(Draft{
		Sizes:      []string{"41", "42"},
		Usage:      []string{"running", "walking"},
		GalleryIDs: []int64{10, 11},
	})

	assert.Contains(t, out, "Sizes: 41, 42")
	assert.Contains(t, out, "Usage: running, walking")
	assert.Contains(t, out, "Gallery images: 10, 11")
}
