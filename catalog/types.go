package catalog

// Fixed attribute registry of the remote catalog. Size drives variations;
// the rest are descriptive.
const (
	AttrColor = 1
	AttrSize  = 3
	AttrUpper = 4
	AttrSole  = 5
	AttrUsage = 6
)

// CategoryShoes is the category every created product is filed under.
const CategoryShoes = 131

// defaultVariationStock is the initial quantity each new variation gets.
const defaultVariationStock = 10

// Term is one value of a product attribute.
type Term struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is the subset of the remote product representation the bot reads.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	RegularPrice string  `json:"regular_price"`
	StockStatus  string  `json:"stock_status"`
	CrossSellIDs []int64 `json:"cross_sell_ids"`
}

// AttributeOption is a single attribute value attached to a variation.
type AttributeOption struct {
	ID     int    `json:"id"`
	Option string `json:"option"`
}

// Variation is the subset of the remote variation representation the bot reads.
type Variation struct {
	ID            int64             `json:"id"`
	RegularPrice  string            `json:"regular_price"`
	StockQuantity int               `json:"stock_quantity"`
	StockStatus   string            `json:"stock_status"`
	Attributes    []AttributeOption `json:"attributes"`
}

// ProductDraft collects everything needed to publish a new variable product.
// Sizes become one variation each; the price applies to the parent and every
// variation.
type ProductDraft struct {
	Title        string
	Description  string
	SKU          string
	Price        string
	Sizes        []string
	Color        string
	Upper        string
	Sole         string
	Usage        []string
	Tags         []string
	MainImageID  int64
	GalleryIDs   []int64
}

// attributePayload mirrors the remote attribute assignment shape.
type attributePayload struct {
	ID        int      `json:"id"`
	Options   []string `json:"options"`
	Variation bool     `json:"variation"`
	Visible   bool     `json:"visible"`
}

type tagPayload struct {
	Name string `json:"name"`
}

type imageRef struct {
	ID int64 `json:"id"`
}

type categoryRef struct {
	ID int `json:"id"`
}

// productPayload is the create-product request body, sent without variations.
type productPayload struct {
	Name         string             `json:"name"`
	Type         string             `json:"type"`
	Description  string             `json:"description"`
	SKU          string             `json:"sku"`
	Slug         string             `json:"slug"`
	RegularPrice string             `json:"regular_price"`
	Attributes   []attributePayload `json:"attributes"`
	Tags         []tagPayload       `json:"tags"`
	Images       []imageRef         `json:"images"`
	Categories   []categoryRef      `json:"categories"`
	ManageStock  bool               `json:"manage_stock"`
}

// variationPayload is the create-variation request body.
type variationPayload struct {
	RegularPrice  string            `json:"regular_price"`
	Attributes    []AttributeOption `json:"attributes"`
	ManageStock   bool              `json:"manage_stock"`
	StockQuantity int               `json:"stock_quantity"`
	StockStatus   string            `json:"stock_status"`
}

// stockPatch is the per-variation stock update body.
type stockPatch struct {
	ManageStock   bool   `json:"manage_stock"`
	StockQuantity int    `json:"stock_quantity"`
	StockStatus   string `json:"stock_status"`
}

func stockStatusFor(qty int) string {
	if qty > 0 {
		return "instock"
	}
	return "outofstock"
}
