package flow

import (
	"context"
	"io"

	"shopbot/catalog"
	"shopbot/core/logger"
	tghelpers "shopbot/core/telegram/helpers"
	"log/slog"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

// Catalog is the remote surface the flows publish to. *catalog.Client
// satisfies it; tests substitute a stub.
type Catalog interface {
	ListAttributeTerms(ctx context.Context, attributeID int) []catalog.Term
	CreateAttributeTerm(ctx context.Context, attributeID int, name string) (string, error)
	UploadMedia(ctx context.Context, filename string, data io.Reader) (int64, error)
	FindProductBySKU(ctx context.Context, sku string) (*catalog.Product, error)
	CreateProduct(ctx context.Context, draft catalog.ProductDraft) (int64, error)
	UpdateProduct(ctx context.Context, productID int64, patch map[string]any) error
	ListVariations(ctx context.Context, productID int64) ([]catalog.Variation, error)
	UpdateVariation(ctx context.Context, productID, variationID int64, patch map[string]any) error
	UpdateVariationsStock(ctx context.Context, productID int64, spec catalog.StockSpec) error
	UpdateCrossSells(ctx context.Context, productID int64, newIDs []int64) error
}

// Engine drives the conversation flows. All session access goes through the
// injected store; the transport serializes updates per chat, so handlers
// never race on a single session.
type Engine struct {
	store Store
	cat   Catalog
}

// NewEngine builds a flow engine over the given session store and catalog.
func NewEngine(store Store, cat Catalog) *Engine {
	return &Engine{store: store, cat: cat}
}

// InProgress reports whether the operator has an active flow.
func (e *Engine) InProgress(userID int64) bool {
	_, ok := e.store.Get(userID)
	return ok
}

// ManagerHandler routes a text or photo update into the operator's active
// flow. Unhandled failures are caught here: logged, reported generically,
// and the session is discarded.
func (e *Engine) ManagerHandler(c tele.Context) error {
	userID := c.Sender().ID
	st, ok := e.store.Get(userID)
	if !ok {
		return nil
	}

	var err error
	switch s := st.(type) {
	case *CreateState:
		err = e.handleCreateUpdate(c, s)
	case *EditState:
		err = e.handleEditUpdate(c, s)
	case *LinkState:
		err = e.handleLinkUpdate(c, s)
	}
	return e.boundary(c, st, err)
}

// boundary is the flow-level error backstop.
func (e *Engine) boundary(c tele.Context, st State, err error) error {
	if err == nil {
		return nil
	}
	ctx := tghelpers.BuildContext(c)
	logger.Error(ctx, "flow", "flow.failed",
		slog.String("flow", st.FlowName()),
		slog.String("err", err.Error()),
	)
	e.store.Clear(c.Sender().ID)
	return tghelpers.SendText(c, msgGenericError)
}

// callbackBoundary mirrors boundary for callback-driven steps.
func (e *Engine) callbackBoundary(c tele.Context, st State, err error) error {
	return e.boundary(c, st, err)
}

// StartCreate begins a fresh create flow for the operator.
func (e *Engine) StartCreate(c tele.Context) error {
	userID := c.Sender().ID
	st := &CreateState{
		FlowID:       uuid.NewString(),
		Step:         StepTitle,
		GalleryFiles: make(map[string]struct{}),
	}
	e.store.Set(userID, st)
	e.logTransition(c, st, "flow.started")
	return tghelpers.SendText(c, msgPromptTitle)
}

// StartEdit begins a fresh edit flow for the operator.
func (e *Engine) StartEdit(c tele.Context) error {
	userID := c.Sender().ID
	st := &EditState{FlowID: uuid.NewString(), Step: EditStepSKU}
	e.store.Set(userID, st)
	e.logTransition(c, st, "flow.started")
	return tghelpers.SendText(c, msgPromptEditSKU)
}

// StartLink begins a fresh link flow for the operator.
func (e *Engine) StartLink(c tele.Context) error {
	userID := c.Sender().ID
	st := &LinkState{FlowID: uuid.NewString()}
	e.store.Set(userID, st)
	e.logTransition(c, st, "flow.started")
	return tghelpers.SendText(c, msgPromptLinkSKUs)
}

// Cancel abandons the operator's active flow, if any.
func (e *Engine) Cancel(c tele.Context) error {
	userID := c.Sender().ID
	st, ok := e.store.Get(userID)
	if !ok {
		return tghelpers.SendText(c, msgNoActiveFlow)
	}
	e.store.Clear(userID)
	e.logTransition(c, st, "flow.cancelled")
	return tghelpers.SendText(c, msgCancelled)
}

func (e *Engine) logTransition(c tele.Context, st State, event string, extra ...slog.Attr) {
	ctx := tghelpers.BuildContext(c)
	attrs := make([]slog.Attr, 0, 3+len(extra))
	attrs = append(attrs, slog.String("flow", st.FlowName()))
	switch s := st.(type) {
	case *CreateState:
		attrs = append(attrs, slog.String("flow_id", s.FlowID), slog.String("state", s.Step.String()))
	case *EditState:
		attrs = append(attrs, slog.String("flow_id", s.FlowID), slog.String("state", s.Step.String()))
	case *LinkState:
		attrs = append(attrs, slog.String("flow_id", s.FlowID))
	}
	attrs = append(attrs, extra...)
	logger.Info(ctx, "flow", event, attrs...)
}

// sendSelector sends a selection menu synchronously so the message id can be
// remembered for later cleanup.
func sendSelector(c tele.Context, text string, markup *tele.ReplyMarkup) (int, error) {
	msg, err := c.Bot().Send(c.Recipient(), text, markup)
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}
