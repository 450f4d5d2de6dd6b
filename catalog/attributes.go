package catalog

import (
	"context"
	"fmt"
	"net/http"

	"shopbot/core/logger"
	"log/slog"
)

// ListAttributeTerms fetches the known values of an attribute. A failed
// fetch yields an empty list so selection menus degrade to free text entry.
func (c *Client) ListAttributeTerms(ctx context.Context, attributeID int) []Term {
	var terms []Term
	path := fmt.Sprintf("/products/attributes/%d/terms", attributeID)
	status, err := c.doJSON(ctx, "terms.list", http.MethodGet, path, nil, nil, &terms)
	if err != nil {
		logger.Warn(ctx, "catalog", "terms.list.degraded",
			slog.Int("attribute_id", attributeID),
			slog.Int("http_code", status),
			slog.String("err", err.Error()),
		)
		return nil
	}
	return terms
}

// CreateAttributeTerm registers a new attribute value and returns its
// canonical name as echoed by the catalog. Callers fall back to the raw
// input when creation fails.
func (c *Client) CreateAttributeTerm(ctx context.Context, attributeID int, name string) (string, error) {
	var created Term
	path := fmt.Sprintf("/products/attributes/%d/terms", attributeID)
	body := map[string]string{"name": name}
	if _, err := c.doJSON(ctx, "terms.create", http.MethodPost, path, nil, body, &created); err != nil {
		return "", err
	}
	return created.Name, nil
}
