package catalog

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"shopbot/core/logger"
	"log/slog"
)

// ListVariations fetches every variation of a product.
func (c *Client) ListVariations(ctx context.Context, productID int64) ([]Variation, error) {
	var variations []Variation
	path := fmt.Sprintf("/products/%d/variations", productID)
	if _, err := c.doJSON(ctx, "variations.list", http.MethodGet, path, nil, nil, &variations); err != nil {
		return nil, err
	}
	return variations, nil
}

// UpdateVariation patches a single variation with the provided fields.
func (c *Client) UpdateVariation(ctx context.Context, productID, variationID int64, patch map[string]any) error {
	path := fmt.Sprintf("/products/%d/variations/%d", productID, variationID)
	_, err := c.doJSON(ctx, "variations.update", http.MethodPut, path, nil, patch, nil)
	return err
}

// sizeOf extracts the size option attached to a variation, empty when the
// variation carries no size attribute.
func sizeOf(v Variation) string {
	for _, attr := range v.Attributes {
		if attr.ID == AttrSize {
			return attr.Option
		}
	}
	return ""
}

// sortBySize orders variations by numeric size ascending. Non-numeric sizes
// sort last, keeping their relative order.
func sortBySize(variations []Variation) {
	sort.SliceStable(variations, func(i, j int) bool {
		a, errA := strconv.Atoi(sizeOf(variations[i]))
		b, errB := strconv.Atoi(sizeOf(variations[j]))
		if errA != nil {
			return false
		}
		if errB != nil {
			return true
		}
		return a < b
	})
}

// UpdateVariationsStock re-fetches the product's variations, orders them by
// numeric size, writes the resolved quantity to each one, and finally patches
// the parent's aggregate availability: in stock iff any quantity is positive.
func (c *Client) UpdateVariationsStock(ctx context.Context, productID int64, spec StockSpec) error {
	if spec.IsZero() {
		return fmt.Errorf("catalog: variations.stock: empty stock spec")
	}
	start := time.Now()

	variations, err := c.ListVariations(ctx, productID)
	if err != nil {
		return err
	}
	sortBySize(variations)

	hasStock := false
	for i, v := range variations {
		qty := spec.quantityAt(i)
		patch := stockPatch{
			ManageStock:   true,
			StockQuantity: qty,
			StockStatus:   stockStatusFor(qty),
		}
		path := fmt.Sprintf("/products/%d/variations/%d", productID, v.ID)
		if _, err := c.doJSON(ctx, "variations.stock", http.MethodPut, path, nil, patch, nil); err != nil {
			return err
		}
		if qty > 0 {
			hasStock = true
		}
	}

	aggregate := "outofstock"
	if hasStock {
		aggregate = "instock"
	}
	if err := c.UpdateProduct(ctx, productID, map[string]any{"stock_status": aggregate}); err != nil {
		return err
	}

	logger.Info(ctx, "catalog", "variations.stock.updated",
		slog.Int64("product_id", productID),
		slog.Int("variations", len(variations)),
		slog.String("stock", aggregate),
		slog.Duration("duration", logger.Took(start)),
	)
	return nil
}
