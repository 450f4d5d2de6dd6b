package flow

import "shopbot/catalog"

// BuildDraft converts collected session data into the catalog's create
// payload. Brand is collected for the operator's summary but the remote
// product model has no brand field, so it is not published.
func BuildDraft(d Draft) catalog.ProductDraft {
	return catalog.ProductDraft{
		Title:       d.Title,
		Description: d.Description,
		SKU:         d.SKU,
		Price:       d.Price,
		Sizes:       d.Sizes,
		Color:       d.Color,
		Upper:       d.Upper,
		Sole:        d.Sole,
		Usage:       d.Usage,
		Tags:        d.Tags,
		MainImageID: d.MainImageID,
		GalleryIDs:  d.GalleryIDs,
	}
}
