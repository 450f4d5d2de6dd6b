package flow

import (
	"errors"
	"fmt"

	"shopbot/catalog"
	"shopbot/core/logger"
	"shopbot/core/telegram/callbacks"
	tghelpers "shopbot/core/telegram/helpers"
	"shopbot/core/telegram/keyboard"
	"shopbot/core/telegram/ui"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Callback uniques the create flow answers to. The bot registers these
// against the engine's handlers.
const (
	CbColor     = "color"
	CbColorNew  = "color_new"
	CbUpper     = "upper"
	CbUpperNew  = "upper_new"
	CbSole      = "sole"
	CbSoleNew   = "sole_new"
	CbUsage     = "usage"
	CbUsageNew  = "usage_new"
	CbUsageNone = "usage_none"
	CbUsageDone = "usage_done"
)

const (
	cmdDone    = "/done"
	cmdSkip    = "/skip"
	cmdConfirm = "/confirm"
)

func (e *Engine) handleCreateUpdate(c tele.Context, s *CreateState) error {
	if msg := c.Message(); msg != nil && msg.Photo != nil {
		return e.handleCreatePhoto(c, s)
	}
	return e.handleCreateText(c, s)
}

func (e *Engine) handleCreateText(c tele.Context, s *CreateState) error {
	text := c.Text()

	switch s.Step {
	case StepTitle:
		s.Draft.Title = text
		s.Step = StepDescription
		return tghelpers.SendText(c, msgPromptDescription)

	case StepDescription:
		s.Draft.Description = text
		s.Step = StepMainImage
		return tghelpers.SendText(c, msgPromptMainImage)

	case StepMainImage:
		return tghelpers.SendText(c, msgExpectedPhoto)

	case StepGallery:
		if text == cmdDone {
			s.Step = StepSizes
			return tghelpers.SendText(c, msgPromptSizes)
		}
		return tghelpers.SendText(c, msgExpectedPhoto)

	case StepSizes:
		sizes, err := ParseSizes(text)
		if err != nil {
			return tghelpers.SendText(c, msgPromptSizes)
		}
		s.Draft.Sizes = sizes
		return e.showColorSelector(c, s)

	case StepColorNew:
		s.Draft.Color = e.registerTerm(c, catalog.AttrColor, text)
		return e.showUpperSelector(c, s)

	case StepUpperNew:
		s.Draft.Upper = e.registerTerm(c, catalog.AttrUpper, text)
		return e.showSoleSelector(c, s)

	case StepSoleNew:
		s.Draft.Sole = e.registerTerm(c, catalog.AttrSole, text)
		return e.showUsageSelector(c, s, false)

	case StepUsageNew:
		s.Draft.Usage = append(s.Draft.Usage, e.registerTerm(c, catalog.AttrUsage, text))
		return e.showUsageSelector(c, s, true)

	case StepColor, StepUpper, StepSole, StepUsage:
		// selector steps only accept button taps
		return nil

	case StepSKU:
		ctx := tghelpers.BuildContext(c)
		existing, err := e.cat.FindProductBySKU(ctx, text)
		if err != nil {
			return err
		}
		if existing != nil {
			return tghelpers.SendText(c, msgSKUTaken)
		}
		s.Draft.SKU = text
		s.Step = StepPrice
		return tghelpers.SendText(c, msgPromptPrice)

	case StepPrice:
		s.Draft.Price = text
		s.Step = StepTags
		return tghelpers.SendText(c, msgPromptTags)

	case StepTags:
		if text == cmdSkip {
			s.Draft.Tags = nil
		} else {
			s.Draft.Tags = ParseTags(text)
		}
		s.Step = StepBrand
		return tghelpers.SendText(c, msgPromptBrand)

	case StepBrand:
		s.Draft.Brand = text
		s.Step = StepConfirm
		return tghelpers.SendText(c, RenderSummary(s.Draft))

	case StepConfirm:
		if text != cmdConfirm {
			return tghelpers.SendText(c, msgConfirmFooter)
		}
		return e.publishDraft(c, s)
	}
	return nil
}

func (e *Engine) handleCreatePhoto(c tele.Context, s *CreateState) error {
	photo := c.Message().Photo

	switch s.Step {
	case StepMainImage:
		mediaID, err := e.uploadPhoto(c, photo, "main_"+photo.FileID+".jpg")
		if err != nil {
			return err
		}
		s.Draft.MainImageID = mediaID
		s.Step = StepGallery
		s.GalleryHintShown = false
		return tghelpers.SendText(c, msgPromptGallery)

	case StepGallery:
		if !s.SeenGalleryFile(photo.FileID) {
			mediaID, err := e.uploadPhoto(c, photo, "gallery_"+photo.FileID+".jpg")
			if err != nil {
				return err
			}
			s.AddGalleryImage(photo.FileID, mediaID)
		}
		if !s.GalleryHintShown {
			s.GalleryHintShown = true
			return tghelpers.SendText(c, msgGalleryHint)
		}
		return nil

	default:
		return tghelpers.SendText(c, msgExpectedText)
	}
}

func (e *Engine) uploadPhoto(c tele.Context, photo *tele.Photo, filename string) (int64, error) {
	rc, err := c.Bot().File(&photo.File)
	if err != nil {
		return 0, fmt.Errorf("flow: download photo: %w", err)
	}
	defer rc.Close()
	return e.cat.UploadMedia(tghelpers.BuildContext(c), filename, rc)
}

// registerTerm stores a new attribute value remotely and returns its
// canonical name. When the catalog rejects the term the operator's raw input
// is used verbatim.
func (e *Engine) registerTerm(c tele.Context, attributeID int, name string) string {
	ctx := tghelpers.BuildContext(c)
	created, err := e.cat.CreateAttributeTerm(ctx, attributeID, name)
	if err != nil || created == "" {
		logger.Warn(ctx, "flow", "term.fallback",
			slog.Int("attribute_id", attributeID),
			slog.String("term", name),
		)
		return name
	}
	return created
}

func termItems(terms []catalog.Term, checked func(string) bool) []ui.SelectionItem {
	items := make([]ui.SelectionItem, 0, len(terms))
	for _, t := range terms {
		item := ui.SelectionItem{Label: t.Name, Payload: t.Name}
		if checked != nil {
			item.Checked = checked(t.Name)
		}
		items = append(items, item)
	}
	return items
}

// replaceSelector swaps the remembered selector message for a new one.
func (e *Engine) replaceSelector(c tele.Context, s *CreateState, text string, markup *tele.ReplyMarkup) error {
	tghelpers.DeleteMessage(c, s.SelectorMessageID)
	id, err := sendSelector(c, text, markup)
	if err != nil {
		return err
	}
	s.SelectorMessageID = id
	return nil
}

func (e *Engine) showColorSelector(c tele.Context, s *CreateState) error {
	terms := e.cat.ListAttributeTerms(tghelpers.BuildContext(c), catalog.AttrColor)
	menu := ui.SelectionMenu{
		Unique:  CbColor,
		Items:   termItems(terms, nil),
		Actions: []keyboard.InlineBtn{{Text: labelAddNewColor, Unique: CbColorNew}},
	}
	s.Step = StepColor
	return e.replaceSelector(c, s, msgPromptColor, menu.Markup())
}

func (e *Engine) showUpperSelector(c tele.Context, s *CreateState) error {
	terms := e.cat.ListAttributeTerms(tghelpers.BuildContext(c), catalog.AttrUpper)
	menu := ui.SelectionMenu{
		Unique:  CbUpper,
		Items:   termItems(terms, nil),
		Actions: []keyboard.InlineBtn{{Text: labelAddNewUpper, Unique: CbUpperNew}},
	}
	s.Step = StepUpper
	return e.replaceSelector(c, s, msgPromptUpper, menu.Markup())
}

func (e *Engine) showSoleSelector(c tele.Context, s *CreateState) error {
	terms := e.cat.ListAttributeTerms(tghelpers.BuildContext(c), catalog.AttrSole)
	menu := ui.SelectionMenu{
		Unique:  CbSole,
		Items:   termItems(terms, nil),
		Actions: []keyboard.InlineBtn{{Text: labelAddNewSole, Unique: CbSoleNew}},
	}
	s.Step = StepSole
	return e.replaceSelector(c, s, msgPromptSole, menu.Markup())
}

func (e *Engine) usageMenu(c tele.Context, s *CreateState, withDone bool) *tele.ReplyMarkup {
	terms := e.cat.ListAttributeTerms(tghelpers.BuildContext(c), catalog.AttrUsage)
	actions := []keyboard.InlineBtn{
		{Text: labelAddNewUsage, Unique: CbUsageNew},
		{Text: labelUsageNone, Unique: CbUsageNone},
	}
	if withDone {
		actions = append(actions, keyboard.InlineBtn{Text: labelUsageDone, Unique: CbUsageDone})
	}
	menu := ui.SelectionMenu{
		Unique:  CbUsage,
		Items:   termItems(terms, s.HasUsage),
		Actions: actions,
	}
	return menu.Markup()
}

func (e *Engine) showUsageSelector(c tele.Context, s *CreateState, withDone bool) error {
	s.Step = StepUsage
	return e.replaceSelector(c, s, msgPromptUsage, e.usageMenu(c, s, withDone))
}

func (e *Engine) publishDraft(c tele.Context, s *CreateState) error {
	ctx := tghelpers.BuildContext(c)
	productID, err := e.cat.CreateProduct(ctx, BuildDraft(s.Draft))
	if err != nil {
		e.store.Clear(c.Sender().ID)
		if errors.Is(err, catalog.ErrDuplicateSKU) {
			return tghelpers.SendText(c, msgSKUTaken)
		}
		logger.Error(ctx, "flow", "flow.failed",
			slog.String("flow", s.FlowName()),
			slog.String("flow_id", s.FlowID),
			slog.String("sku", s.Draft.SKU),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendText(c, msgGenericError)
	}

	e.store.Clear(c.Sender().ID)
	e.logTransition(c, s, "flow.completed",
		slog.Int64("product_id", productID),
		slog.String("sku", s.Draft.SKU),
	)
	return tghelpers.SendText(c, fmt.Sprintf("✅ Product created! ID: %d", productID))
}

// createState fetches the operator's session when it is a create flow at the
// expected step.
func (e *Engine) createState(c tele.Context, step CreateStep) (*CreateState, bool) {
	st, ok := e.store.Get(c.Sender().ID)
	if !ok {
		return nil, false
	}
	s, ok := st.(*CreateState)
	if !ok || s.Step != step {
		return nil, false
	}
	return s, true
}

// HandleColorSelected consumes a color button tap.
func (e *Engine) HandleColorSelected(c tele.Context) error {
	s, ok := e.createState(c, StepColor)
	if !ok {
		return nil
	}
	s.Draft.Color = callbacks.CallbackPayload(c)
	return e.callbackBoundary(c, s, e.showUpperSelector(c, s))
}

// HandleColorNew switches the create flow to free text color entry.
func (e *Engine) HandleColorNew(c tele.Context) error {
	s, ok := e.createState(c, StepColor)
	if !ok {
		return nil
	}
	tghelpers.DeleteMessage(c, s.SelectorMessageID)
	s.SelectorMessageID = 0
	s.Step = StepColorNew
	return e.callbackBoundary(c, s, tghelpers.SendText(c, msgPromptColorNew))
}

// HandleUpperSelected consumes an upper material button tap.
func (e *Engine) HandleUpperSelected(c tele.Context) error {
	s, ok := e.createState(c, StepUpper)
	if !ok {
		return nil
	}
	s.Draft.Upper = callbacks.CallbackPayload(c)
	return e.callbackBoundary(c, s, e.showSoleSelector(c, s))
}

// HandleUpperNew switches the create flow to free text upper entry.
func (e *Engine) HandleUpperNew(c tele.Context) error {
	s, ok := e.createState(c, StepUpper)
	if !ok {
		return nil
	}
	tghelpers.DeleteMessage(c, s.SelectorMessageID)
	s.SelectorMessageID = 0
	s.Step = StepUpperNew
	return e.callbackBoundary(c, s, tghelpers.SendText(c, msgPromptUpperNew))
}

// HandleSoleSelected consumes a sole material button tap.
func (e *Engine) HandleSoleSelected(c tele.Context) error {
	s, ok := e.createState(c, StepSole)
	if !ok {
		return nil
	}
	s.Draft.Sole = callbacks.CallbackPayload(c)
	return e.callbackBoundary(c, s, e.showUsageSelector(c, s, false))
}

// HandleSoleNew switches the create flow to free text sole entry.
func (e *Engine) HandleSoleNew(c tele.Context) error {
	s, ok := e.createState(c, StepSole)
	if !ok {
		return nil
	}
	tghelpers.DeleteMessage(c, s.SelectorMessageID)
	s.SelectorMessageID = 0
	s.Step = StepSoleNew
	return e.callbackBoundary(c, s, tghelpers.SendText(c, msgPromptSoleNew))
}

// HandleUsageToggled flips one usage value and re-renders the menu in place.
func (e *Engine) HandleUsageToggled(c tele.Context) error {
	s, ok := e.createState(c, StepUsage)
	if !ok {
		return nil
	}
	s.ToggleUsage(callbacks.CallbackPayload(c))
	err := c.Edit(msgPromptUsage, e.usageMenu(c, s, true))
	return e.callbackBoundary(c, s, err)
}

// HandleUsageNew switches the create flow to free text usage entry.
func (e *Engine) HandleUsageNew(c tele.Context) error {
	s, ok := e.createState(c, StepUsage)
	if !ok {
		return nil
	}
	tghelpers.DeleteMessage(c, s.SelectorMessageID)
	s.SelectorMessageID = 0
	s.Step = StepUsageNew
	return e.callbackBoundary(c, s, tghelpers.SendText(c, msgPromptUsageNew))
}

// HandleUsageClosed finishes usage selection (done or none) and moves on to
// the SKU step.
func (e *Engine) HandleUsageClosed(c tele.Context) error {
	s, ok := e.createState(c, StepUsage)
	if !ok {
		return nil
	}
	tghelpers.DeleteMessage(c, s.SelectorMessageID)
	s.SelectorMessageID = 0
	s.Step = StepSKU
	return e.callbackBoundary(c, s, tghelpers.SendText(c, msgPromptSKU))
}
