package search

import (
	"context"

	catalogEntity "shopsearch.GO/model/entity/catalog"
)

// SortSpec is the total order for a result page: the primary key direction
// follows sortOrder, the entity-id tie-break is always ascending so page
// boundaries stay stable between asc and desc.
type SortSpec struct {
	Key     SortKey
	Desc    bool
	Keyword string // case-folded keyword, needed for relevance scoring
}

// CategoryCount is one category facet row.
type CategoryCount struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	URLKey     string `json:"url_key"`
	Count      int64  `json:"count"`
}

// ValueCount is one attribute-value facet row.
type ValueCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// SuggestionRow is a ranked autocomplete candidate from one source.
type SuggestionRow struct {
	Name       string
	URLKey     string
	Popularity int64
	Prefix     bool // keyword matches at the start of the name
}

// CatalogStore is the read interface over the product catalog. The engine
// never owns this data; model/repository/catalog implements it over GORM.
type CatalogStore interface {
	// QueryProducts returns one ordered page of the plan's match set.
	QueryProducts(ctx context.Context, plan Plan, sort SortSpec, offset, limit int) ([]catalogEntity.Product, error)
	// CountProducts returns the size of the full match set.
	CountProducts(ctx context.Context, plan Plan) (int64, error)
	// CountByCategory counts qualifying products per category; a product
	// contributes to every category it belongs to. Sorted count desc, name asc.
	CountByCategory(ctx context.Context, plan Plan) ([]CategoryCount, error)
	// CountByAttribute counts qualifying products per value of one attribute.
	// Sorted count desc, value asc.
	CountByAttribute(ctx context.Context, plan Plan, code string) ([]ValueCount, error)
	// PriceRange returns the observed effective-price min/max; ok is false
	// when the plan matches nothing.
	PriceRange(ctx context.Context, plan Plan) (min, max float64, ok bool, err error)
	// SuggestProducts and SuggestCategories return autocomplete candidates for
	// a case-folded keyword, prefix matches first.
	SuggestProducts(ctx context.Context, term string, limit int) ([]SuggestionRow, error)
	SuggestCategories(ctx context.Context, term string, limit int) ([]SuggestionRow, error)
	// ListAttributes returns the filterable attribute definitions.
	ListAttributes(ctx context.Context) ([]catalogEntity.Attribute, error)
}
