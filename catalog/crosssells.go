package catalog

import (
	"context"
	"fmt"
	"sort"
)

// UpdateCrossSells merges the supplied ids into the product's existing
// cross-sell set, deduplicated, and writes the union back.
func (c *Client) UpdateCrossSells(ctx context.Context, productID int64, newIDs []int64) error {
	product, err := c.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("catalog: crosssells: fetch product %d: %w", productID, err)
	}

	seen := make(map[int64]struct{}, len(product.CrossSellIDs)+len(newIDs))
	merged := make([]int64, 0, len(product.CrossSellIDs)+len(newIDs))
	for _, id := range product.CrossSellIDs {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}
	for _, id := range newIDs {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i] < merged[j] })

	return c.UpdateProduct(ctx, productID, map[string]any{"cross_sell_ids": merged})
}
