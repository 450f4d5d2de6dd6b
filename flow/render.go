package flow

import (
	"fmt"
	"strconv"
	"strings"
)

const emptyPlaceholder = "—"

func joinOrPlaceholder(values []string) string {
	if len(values) == 0 {
		return emptyPlaceholder
	}
	return strings.Join(values, ", ")
}

func joinIDs(ids []int64) string {
	if len(ids) == 0 {
		return emptyPlaceholder
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}

// RenderSummary lays out every collected field for the confirmation step,
// with placeholders for fields the operator skipped.
func RenderSummary(d Draft) string {
	var b strings.Builder
	b.WriteString("📋 Product summary:\n")
	fmt.Fprintf(&b, "Title: %s\n", d.Title)
	fmt.Fprintf(&b, "Description: %s\n", d.Description)
	fmt.Fprintf(&b, "Main image: %d\n", d.MainImageID)
	fmt.Fprintf(&b, "Gallery images: %s\n", joinIDs(d.GalleryIDs))
	fmt.Fprintf(&b, "Sizes: %s\n", joinOrPlaceholder(d.Sizes))
	fmt.Fprintf(&b, "Color: %s\n", d.Color)
	fmt.Fprintf(&b, "Upper material: %s\n", d.Upper)
	fmt.Fprintf(&b, "Sole material: %s\n", d.Sole)
	fmt.Fprintf(&b, "Usage: %s\n", joinOrPlaceholder(d.Usage))
	fmt.Fprintf(&b, "SKU: %s\n", d.SKU)
	fmt.Fprintf(&b, "Price: %s\n", d.Price)
	fmt.Fprintf(&b, "Tags: %s\n", joinOrPlaceholder(d.Tags))
	fmt.Fprintf(&b, "Brand: %s\n", d.Brand)
	b.WriteString("\n")
	b.WriteString(msgConfirmFooter)
	return b.String()
}
