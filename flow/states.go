// Package flow implements the conversation state machine guiding an operator
// through create, edit, and link operations against the catalog.
package flow

import "shopbot/catalog"

// State is one in-progress flow. Each flow carries its own step type so a
// step value can never be confused across flows.
type State interface {
	FlowName() string
}

// CreateStep enumerates the create flow's collection steps.
type CreateStep int

const (
	StepTitle CreateStep = iota
	StepDescription
	StepMainImage
	StepGallery
	StepSizes
	StepColor
	StepColorNew
	StepUpper
	StepUpperNew
	StepSole
	StepSoleNew
	StepUsage
	StepUsageNew
	StepSKU
	StepPrice
	StepTags
	StepBrand
	StepConfirm
)

func (s CreateStep) String() string {
	switch s {
	case StepTitle:
		return "title"
	case StepDescription:
		return "description"
	case StepMainImage:
		return "main_image"
	case StepGallery:
		return "gallery"
	case StepSizes:
		return "sizes"
	case StepColor:
		return "color"
	case StepColorNew:
		return "color_new"
	case StepUpper:
		return "upper"
	case StepUpperNew:
		return "upper_new"
	case StepSole:
		return "sole"
	case StepSoleNew:
		return "sole_new"
	case StepUsage:
		return "usage"
	case StepUsageNew:
		return "usage_new"
	case StepSKU:
		return "sku"
	case StepPrice:
		return "price"
	case StepTags:
		return "tags"
	case StepBrand:
		return "brand"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Draft accumulates the product under construction.
type Draft struct {
	Title       string
	Description string
	MainImageID int64
	GalleryIDs  []int64
	Sizes       []string
	Color       string
	Upper       string
	Sole        string
	Usage       []string
	SKU         string
	Price       string
	Tags        []string
	Brand       string
}

// CreateState is the create flow's session data.
type CreateState struct {
	FlowID string
	Step   CreateStep
	Draft  Draft

	// GalleryFiles records Telegram file ids already uploaded so a
	// re-delivered photo is not uploaded twice.
	GalleryFiles map[string]struct{}
	// GalleryHintShown flags the one-time continuation hint.
	GalleryHintShown bool

	// SelectorMessageID is the last selection menu sent, deleted best
	// effort when superseded.
	SelectorMessageID int
}

// FlowName implements State.
func (*CreateState) FlowName() string { return "create" }

// AddGalleryImage records an uploaded gallery image. It returns false when
// the Telegram file id was seen before, in which case nothing is added.
func (s *CreateState) AddGalleryImage(fileID string, mediaID int64) bool {
	if s.GalleryFiles == nil {
		s.GalleryFiles = make(map[string]struct{})
	}
	if _, dup := s.GalleryFiles[fileID]; dup {
		return false
	}
	s.GalleryFiles[fileID] = struct{}{}
	s.Draft.GalleryIDs = append(s.Draft.GalleryIDs, mediaID)
	return true
}

// SeenGalleryFile reports whether the Telegram file id was already uploaded.
func (s *CreateState) SeenGalleryFile(fileID string) bool {
	_, ok := s.GalleryFiles[fileID]
	return ok
}

// ToggleUsage flips membership of a usage value in the accumulated set.
func (s *CreateState) ToggleUsage(value string) {
	for i, u := range s.Draft.Usage {
		if u == value {
			s.Draft.Usage = append(s.Draft.Usage[:i], s.Draft.Usage[i+1:]...)
			return
		}
	}
	s.Draft.Usage = append(s.Draft.Usage, value)
}

// HasUsage reports whether a usage value is currently selected.
func (s *CreateState) HasUsage(value string) bool {
	for _, u := range s.Draft.Usage {
		if u == value {
			return true
		}
	}
	return false
}

// EditStep enumerates the edit flow's steps.
type EditStep int

const (
	EditStepSKU EditStep = iota
	EditStepChoice
	EditStepPrice
	EditStepStockMode
	EditStepStockUniform
	EditStepStockList
)

func (s EditStep) String() string {
	switch s {
	case EditStepSKU:
		return "sku_lookup"
	case EditStepChoice:
		return "choice"
	case EditStepPrice:
		return "price_value"
	case EditStepStockMode:
		return "stock_mode"
	case EditStepStockUniform:
		return "stock_uniform"
	case EditStepStockList:
		return "stock_list"
	default:
		return "unknown"
	}
}

// EditState is the edit flow's session data.
type EditState struct {
	FlowID string
	Step   EditStep

	// Product is the resolved target, set once the SKU lookup succeeds.
	Product *catalog.Product

	SelectorMessageID int
}

// FlowName implements State.
func (*EditState) FlowName() string { return "edit" }

// LinkState is the link flow's session data. The flow has a single step:
// collecting the SKU list.
type LinkState struct {
	FlowID string
}

// FlowName implements State.
func (*LinkState) FlowName() string { return "link" }
