package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	coreconfig "shopbot/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

type fakeCatalog struct {
	mu       []recordedRequest
	handlers map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{handlers: make(map[string]func(http.ResponseWriter, *http.Request))}
}

func (f *fakeCatalog) on(method, path string, fn func(http.ResponseWriter, *http.Request)) {
	f.handlers[method+" "+path] = fn
}

func (f *fakeCatalog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}
	f.mu = append(f.mu, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Body:   body,
	})
	if fn, ok := f.handlers[r.Method+" "+r.URL.Path]; ok {
		fn(w, r)
		return
	}
	http.NotFound(w, r)
}

func (f *fakeCatalog) requests() []recordedRequest { return f.mu }

func newTestClient(t *testing.T, fake *fakeCatalog) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	client := NewClient(coreconfig.CatalogConfig{
		BaseURL:        srv.URL,
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		MediaUser:      "media",
		MediaPassword:  "secret",
	})
	return client, srv
}

func jsonResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestCreateProductTwoPhase(t *testing.T) {
	fake := newFakeCatalog()
	fake.on(http.MethodPost, "/wp-json/wc/v3/products", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusCreated, `{"id":77}`)
	})
	fake.on(http.MethodPost, "/wp-json/wc/v3/products/77/variations", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusCreated, `{"id":1}`)
	})
	fake.on(http.MethodPut, "/wp-json/wc/v3/products/77", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, `{"id":77}`)
	})
	client, _ := newTestClient(t, fake)

	draft := ProductDraft{
		Title:       "Jordan 23",
		Description: "Classic",
		SKU:         "NK-J23-WB-M",
		Price:       "565000",
		Sizes:       []string{"41", "42", "43"},
		Color:       "white",
		Upper:       "leather",
		Sole:        "rubber",
		Usage:       []string{"running"},
		MainImageID: 9,
		GalleryIDs:  []int64{10, 11},
	}
	id, err := client.CreateProduct(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)

	reqs := fake.requests()
	require.Len(t, reqs, 5)

	parent := reqs[0]
	assert.Equal(t, http.MethodPost, parent.Method)
	assert.Equal(t, "nk-j23-wb-m", parent.Body["slug"])
	assert.Equal(t, "variable", parent.Body["type"])
	assert.Equal(t, false, parent.Body["manage_stock"])
	assert.NotContains(t, parent.Body, "variations")

	for i, size := range []string{"41", "42", "43"} {
		v := reqs[1+i]
		assert.Equal(t, "/wp-json/wc/v3/products/77/variations", v.Path)
		assert.Equal(t, "565000", v.Body["regular_price"])
		assert.Equal(t, float64(10), v.Body["stock_quantity"])
		attrs := v.Body["attributes"].([]any)
		require.Len(t, attrs, 1)
		attr := attrs[0].(map[string]any)
		assert.Equal(t, float64(AttrSize), attr["id"])
		assert.Equal(t, size, attr["option"])
	}

	patch := reqs[4]
	assert.Equal(t, http.MethodPut, patch.Method)
	assert.Equal(t, true, patch.Body["manage_stock"])
	assert.Equal(t, "instock", patch.Body["stock_status"])
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	fake := newFakeCatalog()
	fake.on(http.MethodPost, "/wp-json/wc/v3/products", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusBadRequest, `{"message":"Invalid or duplicated SKU: already in use."}`)
	})
	client, _ := newTestClient(t, fake)

	_, err := client.CreateProduct(context.Background(), ProductDraft{SKU: "NK-1", Sizes: []string{"41"}})
	require.ErrorIs(t, err, ErrDuplicateSKU)
	assert.Len(t, fake.requests(), 1, "no variations should be created after a rejected parent")
}

func TestFindProductBySKU(t *testing.T) {
	fake := newFakeCatalog()
	fake.on(http.MethodGet, "/wp-json/wc/v3/products", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("sku") {
		case "KNOWN":
			jsonResponse(w, http.StatusOK, `[{"id":5,"sku":"KNOWN","cross_sell_ids":[2]}]`)
		case "BROKEN":
			jsonResponse(w, http.StatusInternalServerError, `{"message":"boom"}`)
		default:
			jsonResponse(w, http.StatusOK, `[]`)
		}
	})
	client, _ := newTestClient(t, fake)
	ctx := context.Background()

	found, err := client.FindProductBySKU(ctx, "KNOWN")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(5), found.ID)

	missing, err := client.FindProductBySKU(ctx, "NOPE")
	require.NoError(t, err)
	assert.Nil(t, missing)

	broken, err := client.FindProductBySKU(ctx, "BROKEN")
	require.NoError(t, err, "remote failures degrade to a miss")
	assert.Nil(t, broken)
}

// stockFixture serves three variations with shuffled sizes and records the
// per-variation stock writes plus the final aggregate patch.
func stockFixture() *fakeCatalog {
	fake := newFakeCatalog()
	fake.on(http.MethodGet, "/wp-json/wc/v3/products/7/variations", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, `[
			{"id":102,"attributes":[{"id":3,"option":"42"}]},
			{"id":101,"attributes":[{"id":3,"option":"41"}]},
			{"id":103,"attributes":[{"id":3,"option":"43"}]}
		]`)
	})
	for _, id := range []string{"101", "102", "103"} {
		fake.on(http.MethodPut, "/wp-json/wc/v3/products/7/variations/"+id, func(w http.ResponseWriter, r *http.Request) {
			jsonResponse(w, http.StatusOK, `{}`)
		})
	}
	fake.on(http.MethodPut, "/wp-json/wc/v3/products/7", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, `{}`)
	})
	return fake
}

func stockWrites(t *testing.T, fake *fakeCatalog) (map[string]map[string]any, map[string]any) {
	t.Helper()
	writes := make(map[string]map[string]any)
	var aggregate map[string]any
	for _, req := range fake.requests() {
		if req.Method != http.MethodPut {
			continue
		}
		if req.Path == "/wp-json/wc/v3/products/7" {
			aggregate = req.Body
			continue
		}
		parts := strings.Split(req.Path, "/")
		writes[parts[len(parts)-1]] = req.Body
	}
	return writes, aggregate
}

func TestUpdateVariationsStockPositionalPadding(t *testing.T) {
	fake := stockFixture()
	client, _ := newTestClient(t, fake)

	err := client.UpdateVariationsStock(context.Background(), 7, PerVariationStock([]int{1, 2}))
	require.NoError(t, err)

	writes, aggregate := stockWrites(t, fake)
	// size order 41,42,43 maps to variations 101,102,103; the short list pads zeros
	assert.Equal(t, float64(1), writes["101"]["stock_quantity"])
	assert.Equal(t, float64(2), writes["102"]["stock_quantity"])
	assert.Equal(t, float64(0), writes["103"]["stock_quantity"])
	assert.Equal(t, "outofstock", writes["103"]["stock_status"])
	assert.Equal(t, "instock", aggregate["stock_status"])
}

func TestUpdateVariationsStockAggregateLaw(t *testing.T) {
	cases := []struct {
		name string
		spec StockSpec
		want string
	}{
		{"uniform zero", UniformStock(0), "outofstock"},
		{"uniform positive", UniformStock(10), "instock"},
		{"single tail positive", PerVariationStock([]int{0, 0, 3}), "instock"},
		{"all zero list", PerVariationStock([]int{0, 0, 0}), "outofstock"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := stockFixture()
			client, _ := newTestClient(t, fake)
			require.NoError(t, client.UpdateVariationsStock(context.Background(), 7, tc.spec))
			_, aggregate := stockWrites(t, fake)
			assert.Equal(t, tc.want, aggregate["stock_status"])
		})
	}
}

func TestUpdateCrossSellsUnion(t *testing.T) {
	fake := newFakeCatalog()
	fake.on(http.MethodGet, "/wp-json/wc/v3/products/5", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, `{"id":5,"cross_sell_ids":[7,2]}`)
	})
	fake.on(http.MethodPut, "/wp-json/wc/v3/products/5", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, `{}`)
	})
	client, _ := newTestClient(t, fake)

	require.NoError(t, client.UpdateCrossSells(context.Background(), 5, []int64{2, 9}))

	reqs := fake.requests()
	require.Len(t, reqs, 2)
	got := reqs[1].Body["cross_sell_ids"].([]any)
	assert.Equal(t, []any{float64(2), float64(7), float64(9)}, got)
}

func TestListAttributeTermsDegradesToEmpty(t *testing.T) {
	fake := newFakeCatalog()
	fake.on(http.MethodGet, fmt.Sprintf("/wp-json/wc/v3/products/attributes/%d/terms", AttrColor),
		func(w http.ResponseWriter, r *http.Request) {
			jsonResponse(w, http.StatusInternalServerError, `{"message":"boom"}`)
		})
	client, _ := newTestClient(t, fake)

	terms := client.ListAttributeTerms(context.Background(), AttrColor)
	assert.Empty(t, terms)
}

func TestCreateAttributeTerm(t *testing.T) {
	fake := newFakeCatalog()
	path := fmt.Sprintf("/wp-json/wc/v3/products/attributes/%d/terms", AttrUsage)
	fake.on(http.MethodPost, path, func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusCreated, `{"id":12,"name":"Running"}`)
	})
	client, _ := newTestClient(t, fake)

	name, err := client.CreateAttributeTerm(context.Background(), AttrUsage, "running")
	require.NoError(t, err)
	assert.Equal(t, "Running", name, "the catalog's canonical casing wins")
}

func TestCreateAttributeTermFailure(t *testing.T) {
	fake := newFakeCatalog()
	path := fmt.Sprintf("/wp-json/wc/v3/products/attributes/%d/terms", AttrColor)
	fake.on(http.MethodPost, path, func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusBadRequest, `{"message":"term exists"}`)
	})
	client, _ := newTestClient(t, fake)

	name, err := client.CreateAttributeTerm(context.Background(), AttrColor, "red")
	require.Error(t, err)
	assert.Empty(t, name)
}

func TestUploadMedia(t *testing.T) {
	var gotUser, gotPass, gotContentType string
	fake := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/media" {
			http.NotFound(w, r)
			return
		}
		gotUser, gotPass, _ = r.BasicAuth()
		gotContentType = r.Header.Get("Content-Type")
		jsonResponse(w, http.StatusCreated, `{"id":42}`)
	})
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	client := NewClient(coreconfig.CatalogConfig{
		BaseURL:        srv.URL,
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		MediaUser:      "media",
		MediaPassword:  "secret",
	})

	id, err := client.UploadMedia(context.Background(), "main_abc.jpg", strings.NewReader("fakejpegdata"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "media", gotUser, "media uploads use the media credential pair")
	assert.Equal(t, "secret", gotPass)
	assert.Contains(t, gotContentType, "multipart/form-data")
}
