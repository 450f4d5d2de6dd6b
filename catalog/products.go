package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shopbot/core/logger"
	"log/slog"
)

// FindProductBySKU returns the product carrying sku, or nil when the catalog
// holds no match. Remote failures are treated as a miss.
func (c *Client) FindProductBySKU(ctx context.Context, sku string) (*Product, error) {
	var products []Product
	query := url.Values{"sku": []string{sku}}
	status, err := c.doJSON(ctx, "products.find", http.MethodGet, "/products", query, nil, &products)
	if err != nil || status != http.StatusOK || len(products) == 0 {
		if err != nil {
			logger.Warn(ctx, "catalog", "products.find.miss",
				slog.String("sku", sku),
				slog.Int("http_code", status),
				slog.String("err", err.Error()),
			)
		}
		return nil, nil
	}
	return &products[0], nil
}

// buildPayload derives the parent create request from a draft. Variations
// are produced separately since the catalog rejects inline variation lists.
func buildPayload(d ProductDraft) (productPayload, []variationPayload) {
	attrs := []attributePayload{
		{ID: AttrSize, Options: d.Sizes, Variation: true, Visible: true},
		{ID: AttrColor, Options: []string{d.Color}, Variation: false, Visible: true},
		{ID: AttrUpper, Options: []string{d.Upper}, Variation: false, Visible: true},
		{ID: AttrSole, Options: []string{d.Sole}, Variation: false, Visible: true},
		{ID: AttrUsage, Options: d.Usage, Variation: false, Visible: true},
	}

	tags := make([]tagPayload, 0, len(d.Tags))
	for _, t := range d.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, tagPayload{Name: t})
		}
	}

	images := make([]imageRef, 0, 1+len(d.GalleryIDs))
	if d.MainImageID != 0 {
		images = append(images, imageRef{ID: d.MainImageID})
	}
	for _, id := range d.GalleryIDs {
		images = append(images, imageRef{ID: id})
	}

	parent := productPayload{
		Name:         d.Title,
		Type:         "variable",
		Description:  d.Description,
		SKU:          d.SKU,
		Slug:         strings.ToLower(d.SKU),
		RegularPrice: d.Price,
		Attributes:   attrs,
		Tags:         tags,
		Images:       images,
		Categories:   []categoryRef{{ID: CategoryShoes}},
		ManageStock:  false,
	}

	variations := make([]variationPayload, 0, len(d.Sizes))
	for _, size := range d.Sizes {
		variations = append(variations, variationPayload{
			RegularPrice:  d.Price,
			Attributes:    []AttributeOption{{ID: AttrSize, Option: size}},
			ManageStock:   true,
			StockQuantity: defaultVariationStock,
			StockStatus:   "instock",
		})
	}
	return parent, variations
}

// CreateProduct publishes a draft in two phases: the parent record first,
// then one create call per variation, then a parent patch enabling stock
// management and marking the product in stock.
func (c *Client) CreateProduct(ctx context.Context, draft ProductDraft) (int64, error) {
	start := time.Now()
	parent, variations := buildPayload(draft)

	var created Product
	_, err := c.doJSON(ctx, "products.create", http.MethodPost, "/products", nil, parent, &created)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && isDuplicateSKUMessage(reqErr.Message) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateSKU, draft.SKU)
		}
		return 0, err
	}

	for _, v := range variations {
		path := fmt.Sprintf("/products/%d/variations", created.ID)
		if _, err := c.doJSON(ctx, "variations.create", http.MethodPost, path, nil, v, nil); err != nil {
			return 0, err
		}
	}

	patch := map[string]any{"manage_stock": true, "stock_status": "instock"}
	if err := c.UpdateProduct(ctx, created.ID, patch); err != nil {
		return 0, err
	}

	logger.Info(ctx, "catalog", "products.created",
		slog.Int64("product_id", created.ID),
		slog.String("sku", draft.SKU),
		slog.Int("variations", len(variations)),
		slog.Duration("duration", logger.Took(start)),
	)
	return created.ID, nil
}

// UpdateProduct patches a product with the provided fields.
func (c *Client) UpdateProduct(ctx context.Context, productID int64, patch map[string]any) error {
	path := fmt.Sprintf("/products/%d", productID)
	_, err := c.doJSON(ctx, "products.update", http.MethodPut, path, nil, patch, nil)
	return err
}

// GetProduct fetches a product by id.
func (c *Client) GetProduct(ctx context.Context, productID int64) (*Product, error) {
	var product Product
	path := fmt.Sprintf("/products/%d", productID)
	if _, err := c.doJSON(ctx, "products.get", http.MethodGet, path, nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
