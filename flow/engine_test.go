package flow

import (
	"context"
	"errors"
	"io"
	"testing"

	"shopbot/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

// stubCatalog records every call so tests can assert on what was, and was
// not, written to the remote catalog.
type stubCatalog struct {
	products   map[string]*catalog.Product
	findErr    error
	createID   int64
	createErr  error
	variations []catalog.Variation

	calls        []string
	created      []catalog.ProductDraft
	productPatch []map[string]any
	variationIDs []int64
	stockSpecs   []catalog.StockSpec
	crossSells   map[int64][]int64
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		products:   make(map[string]*catalog.Product),
		crossSells: make(map[int64][]int64),
	}
}

func (s *stubCatalog) ListAttributeTerms(context.Context, int) []catalog.Term {
	s.calls = append(s.calls, "ListAttributeTerms")
	return nil
}

func (s *stubCatalog) CreateAttributeTerm(_ context.Context, _ int, name string) (string, error) {
	s.calls = append(s.calls, "CreateAttributeTerm")
	return name, nil
}

func (s *stubCatalog) UploadMedia(context.Context, string, io.Reader) (int64, error) {
	s.calls = append(s.calls, "UploadMedia")
	return 1, nil
}

func (s *stubCatalog) FindProductBySKU(_ context.Context, sku string) (*catalog.Product, error) {
	s.calls = append(s.calls, "FindProductBySKU")
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.products[sku], nil
}

func (s *stubCatalog) CreateProduct(_ context.Context, draft catalog.ProductDraft) (int64, error) {
	s.calls = append(s.calls, "CreateProduct")
	s.created = append(s.created, draft)
	return s.createID, s.createErr
}

func (s *stubCatalog) UpdateProduct(_ context.Context, _ int64, patch map[string]any) error {
	s.calls = append(s.calls, "UpdateProduct")
	s.productPatch = append(s.productPatch, patch)
	return nil
}

func (s *stubCatalog) ListVariations(context.Context, int64) ([]catalog.Variation, error) {
	s.calls = append(s.calls, "ListVariations")
	return s.variations, nil
}

func (s *stubCatalog) UpdateVariation(_ context.Context, _, variationID int64, _ map[string]any) error {
	s.calls = append(s.calls, "UpdateVariation")
	s.variationIDs = append(s.variationIDs, variationID)
	return nil
}

func (s *stubCatalog) UpdateVariationsStock(_ context.Context, _ int64, spec catalog.StockSpec) error {
	s.calls = append(s.calls, "UpdateVariationsStock")
	s.stockSpecs = append(s.stockSpecs, spec)
	return nil
}

func (s *stubCatalog) UpdateCrossSells(_ context.Context, productID int64, newIDs []int64) error {
	s.calls = append(s.calls, "UpdateCrossSells")
	s.crossSells[productID] = newIDs
	return nil
}

// fakeContext overrides the handful of tele.Context methods the flow engine
// touches on text paths. The embedded interface stays nil; a call to anything
// unexpected panics, which is the point.
type fakeContext struct {
	tele.Context
	sender *tele.User
	chat   *tele.Chat
	text   string
	msg    *tele.Message
	store  map[string]any
	sent   []string
}

func newFakeContext(userID int64, text string) *fakeContext {
	return &fakeContext{
		sender: &tele.User{ID: userID},
		chat:   &tele.Chat{ID: userID},
		text:   text,
		store:  make(map[string]any),
	}
}

func (f *fakeContext) Sender() *tele.User     { return f.sender }
func (f *fakeContext) Chat() *tele.Chat       { return f.chat }
func (f *fakeContext) Text() string           { return f.text }
func (f *fakeContext) Message() *tele.Message { return f.msg }
func (f *fakeContext) Update() tele.Update    { return tele.Update{ID: 1} }
func (f *fakeContext) Get(key string) any     { return f.store[key] }
func (f *fakeContext) Set(key string, v any)  { f.store[key] = v }

func (f *fakeContext) Send(what any, _ ...any) error {
	if s, ok := what.(string); ok {
		f.sent = append(f.sent, s)
	}
	return nil
}

func (f *fakeContext) lastSent() string {
	if len(f.sent) == 0 {
		return ""
	}
	return f.sent[len(f.sent)-1]
}

const testUserID = int64(42)

func newTestEngine() (*Engine, *MemoryStore, *stubCatalog) {
	store := NewMemoryStore()
	cat := newStubCatalog()
	return NewEngine(store, cat), store, cat
}

func TestStartCreateOpensSession(t *testing.T) {
	engine, store, _ := newTestEngine()
	c := newFakeContext(testUserID, "/create")

	require.NoError(t, engine.StartCreate(c))

	st, ok := store.Get(testUserID)
	require.True(t, ok)
	cs := st.(*CreateState)
	assert.Equal(t, StepTitle, cs.Step)
	assert.NotEmpty(t, cs.FlowID)
	assert.True(t, engine.InProgress(testUserID))
	assert.Equal(t, msgPromptTitle, c.lastSent())
}

func TestCreateTextAdvancesSteps(t *testing.T) {
	engine, store, _ := newTestEngine()
	require.NoError(t, engine.StartCreate(newFakeContext(testUserID, "/create")))

	c := newFakeContext(testUserID, "Jordan 23")
	require.NoError(t, engine.ManagerHandler(c))

	c = newFakeContext(testUserID, "Classic silhouette")
	require.NoError(t, engine.ManagerHandler(c))

	st, _ := store.Get(testUserID)
	cs := st.(*CreateState)
	assert.Equal(t, StepMainImage, cs.Step)
	assert.Equal(t, "Jordan 23", cs.Draft.Title)
	assert.Equal(t, "Classic silhouette", cs.Draft.Description)
	assert.Equal(t, msgPromptMainImage, c.lastSent())
}

func TestGalleryDoneAdvancesToSizes(t *testing.T) {
	engine, store, _ := newTestEngine()
	store.Set(testUserID, &CreateState{FlowID: "f", Step: StepGallery})

	c := newFakeContext(testUserID, "/done")
	require.NoError(t, engine.ManagerHandler(c))

	st, _ := store.Get(testUserID)
	assert.Equal(t, StepSizes, st.(*CreateState).Step)
	assert.Equal(t, msgPromptSizes, c.lastSent())
}

func TestSKUGateKeepsState(t *testing.T) {
	engine, store, cat := newTestEngine()
	cat.products["NK-1"] = &catalog.Product{ID: 5, SKU: "NK-1"}
	store.Set(testUserID, &CreateState{FlowID: "f", Step: StepSKU})

	c := newFakeContext(testUserID, "NK-1")
	require.NoError(t, engine.ManagerHandler(c))

	st, ok := store.Get(testUserID)
	require.True(t, ok, "taken SKU must not end the flow")
	cs := st.(*CreateState)
	assert.Equal(t, StepSKU, cs.Step)
	assert.Empty(t, cs.Draft.SKU)
	assert.Equal(t, msgSKUTaken, c.lastSent())
	assert.NotContains(t, cat.calls, "CreateProduct")
}

func TestSKUAcceptedMovesToPrice(t *testing.T) {
	engine, store, _ := newTestEngine()
	store.Set(testUserID, &CreateState{FlowID: "f", Step: StepSKU})

	c := newFakeContext(testUserID, "NK-NEW")
	require.NoError(t, engine.ManagerHandler(c))

	st, _ := store.Get(testUserID)
	cs := st.(*CreateState)
	assert.Equal(t, StepPrice, cs.Step)
	assert.Equal(t, "NK-NEW", cs.Draft.SKU)
}

func TestConfirmPublishesAndClears(t *testing.T) {
	engine, store, cat := newTestEngine()
	cat.createID = 123
	store.Set(testUserID, &CreateState{
		FlowID: "f",
		Step:   StepConfirm,
		Draft:  Draft{Title: "Jordan 23", SKU: "NK-1", Price: "565000", Sizes: []string{"41"}},
	})

	c := newFakeContext(testUserID, "/confirm")
	require.NoError(t, engine.ManagerHandler(c))

	require.Len(t, cat.created, 1)
	assert.Equal(t, "NK-1", cat.created[0].SKU)
	assert.False(t, engine.InProgress(testUserID))
	assert.Contains(t, c.lastSent(), "123")
}

func TestConfirmRequiresSentinel(t *testing.T) {
	engine, store, cat := newTestEngine()
	store.Set(testUserID, &CreateState{FlowID: "f", Step: StepConfirm})

	c := newFakeContext(testUserID, "yes please")
	require.NoError(t, engine.ManagerHandler(c))

	assert.True(t, engine.InProgress(testUserID))
	assert.Empty(t, cat.created)
	assert.Equal(t, msgConfirmFooter, c.lastSent())
}

func TestConfirmDuplicateSKUEndsFlow(t *testing.T) {
	engine, store, cat := newTestEngine()
	cat.createErr = catalog.ErrDuplicateSKU
	store.Set(testUserID, &CreateState{FlowID: "f", Step: StepConfirm, Draft: Draft{SKU: "NK-1"}})

	c := newFakeContext(testUserID, "/confirm")
	require.NoError(t, engine.ManagerHandler(c))

	assert.False(t, engine.InProgress(testUserID))
	assert.Equal(t, msgSKUTaken, c.lastSent())
}

func TestFlowFailureClearsSession(t *testing.T) {
	engine, store, cat := newTestEngine()
	cat.findErr = errors.New("catalog unreachable")
	store.Set(testUserID, &CreateState{FlowID: "f", Step: StepSKU})

	c := newFakeContext(testUserID, "NK-1")
	require.NoError(t, engine.ManagerHandler(c))

	assert.False(t, engine.InProgress(testUserID))
	assert.Equal(t, msgGenericError, c.lastSent())
}

func TestCancel(t *testing.T) {
	engine, store, _ := newTestEngine()
	store.Set(testUserID, &LinkState{FlowID: "f"})

	c := newFakeContext(testUserID, "/cancel")
	require.NoError(t, engine.Cancel(c))
	assert.False(t, engine.InProgress(testUserID))
	assert.Equal(t, msgCancelled, c.lastSent())

	c = newFakeContext(testUserID, "/cancel")
	require.NoError(t, engine.Cancel(c))
	assert.Equal(t, msgNoActiveFlow, c.lastSent())
}

func TestEditSKULookupMiss(t *testing.T) {
	engine, store, _ := newTestEngine()
	store.Set(testUserID, &EditState{FlowID: "f", Step: EditStepSKU})

	c := newFakeContext(testUserID, "NOPE")
	require.NoError(t, engine.ManagerHandler(c))

	st, ok := store.Get(testUserID)
	require.True(t, ok)
	assert.Equal(t, EditStepSKU, st.(*EditState).Step)
	assert.Equal(t, msgSKUNotFound, c.lastSent())
}

func TestEditSKURejectsNonTextInput(t *testing.T) {
	engine, store, cat := newTestEngine()
	cat.products[""] = &catalog.Product{ID: 999}
	store.Set(testUserID, &EditState{FlowID: "f", Step: EditStepSKU})

	c := newFakeContext(testUserID, "   ")
	require.NoError(t, engine.ManagerHandler(c))
	assert.Empty(t, cat.calls, "blank input must not reach the catalog")
	assert.Equal(t, msgPromptEditSKU, c.lastSent())

	c = newFakeContext(testUserID, "")
	c.msg = &tele.Message{Photo: &tele.Photo{}}
	require.NoError(t, engine.ManagerHandler(c))
	assert.Empty(t, cat.calls)
	assert.Equal(t, msgExpectedText, c.lastSent())

	st, ok := store.Get(testUserID)
	require.True(t, ok)
	es := st.(*EditState)
	assert.Equal(t, EditStepSKU, es.Step)
	assert.Nil(t, es.Product, "no arbitrary product may become the edit target")
}

func TestEditPriceRejectsNonNumeric(t *testing.T) {
	engine, store, cat := newTestEngine()
	store.Set(testUserID, &EditState{
		FlowID:  "f",
		Step:    EditStepPrice,
		Product: &catalog.Product{ID: 7},
	})

	c := newFakeContext(testUserID, "cheap")
	require.NoError(t, engine.ManagerHandler(c))

	assert.Empty(t, cat.calls, "a bad price must not reach the catalog")
	assert.True(t, engine.InProgress(testUserID))
	assert.Equal(t, msgBadNumber, c.lastSent())
}

func TestEditPriceAppliesEverywhere(t *testing.T) {
	engine, store, cat := newTestEngine()
	cat.variations = []catalog.Variation{{ID: 101}, {ID: 102}}
	store.Set(testUserID, &EditState{
		FlowID:  "f",
		Step:    EditStepPrice,
		Product: &catalog.Product{ID: 7},
	})

	c := newFakeContext(testUserID, "600000")
	require.NoError(t, engine.ManagerHandler(c))

	require.Len(t, cat.productPatch, 1)
	assert.Equal(t, "600000", cat.productPatch[0]["regular_price"])
	assert.Equal(t, []int64{101, 102}, cat.variationIDs)
	assert.False(t, engine.InProgress(testUserID))
}

func TestEditStockUniform(t *testing.T) {
	engine, store, cat := newTestEngine()
	store.Set(testUserID, &EditState{
		FlowID:  "f",
		Step:    EditStepStockUniform,
		Product: &catalog.Product{ID: 7},
	})

	c := newFakeContext(testUserID, "0")
	require.NoError(t, engine.ManagerHandler(c))

	require.Len(t, cat.stockSpecs, 1)
	assert.Equal(t, catalog.UniformStock(0), cat.stockSpecs[0])
	assert.False(t, engine.InProgress(testUserID))
}

func TestEditStockListRejectsMalformed(t *testing.T) {
	engine, store, cat := newTestEngine()
	store.Set(testUserID, &EditState{
		FlowID:  "f",
		Step:    EditStepStockList,
		Product: &catalog.Product{ID: 7},
	})

	c := newFakeContext(testUserID, "1,x,3")
	require.NoError(t, engine.ManagerHandler(c))

	assert.Empty(t, cat.stockSpecs)
	assert.True(t, engine.InProgress(testUserID))
	assert.Equal(t, msgBadStockList, c.lastSent())
}

func TestLinkRejectsUnknownSKUs(t *testing.T) {
	engine, store, cat := newTestEngine()
	cat.products["NK-A"] = &catalog.Product{ID: 1, SKU: "NK-A"}
	store.Set(testUserID, &LinkState{FlowID: "f"})

	c := newFakeContext(testUserID, "NK-A, NK-B")
	require.NoError(t, engine.ManagerHandler(c))

	assert.NotContains(t, cat.calls, "UpdateCrossSells", "nothing is linked until every SKU resolves")
	assert.True(t, engine.InProgress(testUserID))
	assert.Contains(t, c.lastSent(), "NK-B")
}

func TestLinkCrossLinksEveryProduct(t *testing.T) {
	engine, store, cat := newTestEngine()
	cat.products["NK-A"] = &catalog.Product{ID: 1, SKU: "NK-A"}
	cat.products["NK-B"] = &catalog.Product{ID: 2, SKU: "NK-B"}
	cat.products["NK-C"] = &catalog.Product{ID: 3, SKU: "NK-C"}
	store.Set(testUserID, &LinkState{FlowID: "f"})

	c := newFakeContext(testUserID, "NK-A,NK-B,NK-C")
	require.NoError(t, engine.ManagerHandler(c))

	assert.Equal(t, []int64{2, 3}, cat.crossSells[1])
	assert.Equal(t, []int64{1, 3}, cat.crossSells[2])
	assert.Equal(t, []int64{1, 2}, cat.crossSells[3])
	assert.False(t, engine.InProgress(testUserID))
	assert.Len(t, c.sent, 3)
}
