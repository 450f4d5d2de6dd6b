package flow

import (
	"fmt"
	"strings"

	tghelpers "shopbot/core/telegram/helpers"
	"log/slog"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

// handleLinkUpdate resolves every listed SKU before touching anything; a
// single unknown SKU rejects the whole input. Cross-sell writes are not
// transactional: a mid-batch failure leaves earlier products linked.
func (e *Engine) handleLinkUpdate(c tele.Context, s *LinkState) error {
	skus, err := ParseSKUList(c.Text())
	if err != nil {
		return tghelpers.SendText(c, msgPromptLinkSKUs)
	}

	ctx := tghelpers.BuildContext(c)
	ids := make(map[string]int64, len(skus))
	var missing []string
	for _, sku := range skus {
		product, err := e.cat.FindProductBySKU(ctx, sku)
		if err != nil {
			return err
		}
		if product == nil {
			missing = append(missing, sku)
			continue
		}
		ids[sku] = product.ID
	}
	if len(missing) > 0 {
		return tghelpers.SendText(c,
			fmt.Sprintf("⚠️ These SKUs were not found: %s", strings.Join(missing, ", ")))
	}

	batchID := uuid.NewString()
	for _, sku := range skus {
		others := make([]int64, 0, len(skus)-1)
		for _, other := range skus {
			if other != sku {
				others = append(others, ids[other])
			}
		}
		if err := e.cat.UpdateCrossSells(ctx, ids[sku], others); err != nil {
			return fmt.Errorf("flow: link %s (batch %s): %w", sku, batchID, err)
		}
		if err := tghelpers.SendText(c, fmt.Sprintf("✅ Product %s linked to the others.", sku)); err != nil {
			return err
		}
	}

	e.store.Clear(c.Sender().ID)
	e.logTransition(c, s, "flow.completed",
		slog.String("batch_id", batchID),
		slog.Int("count", len(skus)),
	)
	return nil
}
