package flow

import (
	"fmt"
	"strconv"
	"strings"

	"shopbot/catalog"
	"shopbot/core/telegram/callbacks"
	tghelpers "shopbot/core/telegram/helpers"
	"shopbot/core/telegram/keyboard"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Callback uniques the edit flow answers to.
const (
	CbEditWhat  = "edit_what"
	CbStockMode = "stock_mode"
)

// Payloads for the edit flow's selection menus.
const (
	editChoicePrice  = "price"
	editChoiceStock  = "stock"
	stockModeUniform = "uniform"
	stockModeList    = "list"
)

func (e *Engine) handleEditUpdate(c tele.Context, s *EditState) error {
	if msg := c.Message(); msg != nil && msg.Photo != nil {
		return tghelpers.SendText(c, msgExpectedText)
	}
	text := strings.TrimSpace(c.Text())

	switch s.Step {
	case EditStepSKU:
		// an empty sku filter would match the catalog's first page
		if text == "" {
			return tghelpers.SendText(c, msgPromptEditSKU)
		}
		ctx := tghelpers.BuildContext(c)
		product, err := e.cat.FindProductBySKU(ctx, text)
		if err != nil {
			return err
		}
		if product == nil {
			return tghelpers.SendText(c, msgSKUNotFound)
		}
		s.Product = product
		markup := keyboard.InlineButtons([]keyboard.InlineBtn{
			{Text: labelEditPrice, Unique: CbEditWhat, Data: editChoicePrice},
			{Text: labelEditStock, Unique: CbEditWhat, Data: editChoiceStock},
		})
		id, err := sendSelector(c, msgPromptEditWhat, markup)
		if err != nil {
			return err
		}
		s.SelectorMessageID = id
		s.Step = EditStepChoice
		return nil

	case EditStepChoice, EditStepStockMode:
		// waiting on a button tap
		return nil

	case EditStepPrice:
		price, err := ParsePrice(text)
		if err != nil {
			return tghelpers.SendText(c, msgBadNumber)
		}
		return e.applyPrice(c, s, price)

	case EditStepStockUniform:
		qty, err := ParseStockQuantity(text)
		if err != nil {
			return tghelpers.SendText(c, msgBadNumber)
		}
		return e.applyStock(c, s, catalog.UniformStock(qty),
			fmt.Sprintf("✅ Stock for every variation set to %d.", qty))

	case EditStepStockList:
		quantities, err := ParseStockList(text)
		if err != nil {
			return tghelpers.SendText(c, msgBadStockList)
		}
		return e.applyStock(c, s, catalog.PerVariationStock(quantities),
			"✅ Variation stock updated.")
	}
	return nil
}

// applyPrice writes the new price to the product and every variation.
func (e *Engine) applyPrice(c tele.Context, s *EditState, price int) error {
	ctx := tghelpers.BuildContext(c)
	productID := s.Product.ID
	priceStr := strconv.Itoa(price)

	if err := e.cat.UpdateProduct(ctx, productID, map[string]any{"regular_price": priceStr}); err != nil {
		return err
	}
	variations, err := e.cat.ListVariations(ctx, productID)
	if err != nil {
		return err
	}
	for _, v := range variations {
		patch := map[string]any{"regular_price": priceStr}
		if err := e.cat.UpdateVariation(ctx, productID, v.ID, patch); err != nil {
			return err
		}
	}

	tghelpers.DeleteMessage(c, s.SelectorMessageID)
	e.store.Clear(c.Sender().ID)
	e.logTransition(c, s, "flow.completed",
		slog.Int64("product_id", productID),
		slog.Int("variations", len(variations)),
	)
	return tghelpers.SendText(c, fmt.Sprintf("✅ Product and variation prices changed to %d.", price))
}

func (e *Engine) applyStock(c tele.Context, s *EditState, spec catalog.StockSpec, doneMsg string) error {
	ctx := tghelpers.BuildContext(c)
	if err := e.cat.UpdateVariationsStock(ctx, s.Product.ID, spec); err != nil {
		return err
	}
	tghelpers.DeleteMessage(c, s.SelectorMessageID)
	e.store.Clear(c.Sender().ID)
	e.logTransition(c, s, "flow.completed",
		slog.Int64("product_id", s.Product.ID),
	)
	return tghelpers.SendText(c, doneMsg)
}

func (e *Engine) editState(c tele.Context, step EditStep) (*EditState, bool) {
	st, ok := e.store.Get(c.Sender().ID)
	if !ok {
		return nil, false
	}
	s, ok := st.(*EditState)
	if !ok || s.Step != step {
		return nil, false
	}
	return s, true
}

// HandleEditChoice consumes the price/stock selection.
func (e *Engine) HandleEditChoice(c tele.Context) error {
	s, ok := e.editState(c, EditStepChoice)
	if !ok {
		return nil
	}

	switch callbacks.CallbackPayload(c) {
	case editChoicePrice:
		s.Step = EditStepPrice
		return e.callbackBoundary(c, s, tghelpers.SendText(c, msgPromptNewPrice))
	case editChoiceStock:
		markup := keyboard.InlineButtons([]keyboard.InlineBtn{
			{Text: labelStockSame, Unique: CbStockMode, Data: stockModeUniform},
			{Text: labelStockEach, Unique: CbStockMode, Data: stockModeList},
		})
		s.Step = EditStepStockMode
		return e.callbackBoundary(c, s, c.Edit(msgPromptStockMode, markup))
	default:
		return nil
	}
}

// HandleStockMode consumes the uniform/per-variation selection.
func (e *Engine) HandleStockMode(c tele.Context) error {
	s, ok := e.editState(c, EditStepStockMode)
	if !ok {
		return nil
	}

	switch callbacks.CallbackPayload(c) {
	case stockModeUniform:
		s.Step = EditStepStockUniform
		return e.callbackBoundary(c, s, tghelpers.SendText(c, msgPromptStockOne))
	case stockModeList:
		ctx := tghelpers.BuildContext(c)
		variations, err := e.cat.ListVariations(ctx, s.Product.ID)
		if err != nil {
			return e.callbackBoundary(c, s, err)
		}
		s.Step = EditStepStockList
		prompt := fmt.Sprintf(
			"📦 Enter one quantity per variation in size order, comma separated (e.g. 1,2,3,0 for %d variations):",
			len(variations),
		)
		return e.callbackBoundary(c, s, tghelpers.SendText(c, prompt))
	default:
		return nil
	}
}
