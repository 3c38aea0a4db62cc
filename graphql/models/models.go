// Package models holds the GraphQL output types. Field names match the
// schema via graphql-go's UseFieldResolvers option.
package models

import gql "github.com/graph-gophers/graphql-go"

type Product struct {
	EntityID    gql.ID   `json:"entity_id" mapstructure:"entity_id"`
	SKU         string   `json:"sku" mapstructure:"sku"`
	Name        string   `json:"name" mapstructure:"name"`
	URLKey      string   `json:"url_key" mapstructure:"url_key"`
	Description *string  `json:"description,omitempty" mapstructure:"description"`
	Price       float64  `json:"price" mapstructure:"price"`
	FinalPrice  float64  `json:"final_price" mapstructure:"final_price"`
	Image       *string  `json:"image,omitempty" mapstructure:"image"`
	Popularity  int32    `json:"popularity" mapstructure:"popularity"`
}

type SearchResult struct {
	Products   []*Product  `json:"products"`
	Facets     *Facets     `json:"facets"`
	Pagination *Pagination `json:"pagination"`
}

type Facets struct {
	Categories []*CategoryFacet  `json:"categories"`
	PriceRange *PriceRange       `json:"price_range,omitempty"`
	Attributes []*AttributeFacet `json:"attributes"`
}

type CategoryFacet struct {
	CategoryID gql.ID `json:"category_id"`
	Name       string `json:"name"`
	URLKey     string `json:"url_key"`
	Count      int32  `json:"count"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type AttributeFacet struct {
	Code   string        `json:"code"`
	Label  string        `json:"label"`
	Values []*ValueCount `json:"values"`
}

type ValueCount struct {
	Value string `json:"value"`
	Count int32  `json:"count"`
}

type Pagination struct {
	Total      int32 `json:"total"`
	Page       int32 `json:"page"`
	Limit      int32 `json:"limit"`
	TotalPages int32 `json:"total_pages"`
}

type Suggestion struct {
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
	Slug        string `json:"slug"`
}

type PopularTerm struct {
	Term  string `json:"term"`
	Count int32  `json:"count"`
}
