package resolvers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	gqlmodels "shopsearch.GO/graphql/models"
	searchService "shopsearch.GO/service/search"
)

// SearchFilters mirrors the SearchFilters input type.
type SearchFilters struct {
	Keyword    *string
	CategoryID *string
	MinPrice   *float64
	MaxPrice   *float64
	Attributes *string
	SortBy     *string
	SortOrder  *string
	Page       *int32
	Limit      *int32
}

// Search runs the faceted search. The input is converted to the same
// key/value form the REST endpoint accepts so both surfaces share one
// validation path.
func (r *QueryResolver) Search(ctx context.Context, filters *SearchFilters) (*gqlmodels.SearchResult, error) {
	raw, err := filtersToValues(filters)
	if err != nil {
		return nil, err
	}
	res, err := r.svc.Search(ctx, raw)
	if err != nil {
		return nil, err
	}
	return searchResultToModel(res), nil
}

func filtersToValues(f *SearchFilters) (url.Values, error) {
	raw := url.Values{}
	if f == nil {
		return raw, nil
	}
	if f.Keyword != nil {
		raw.Set("keyword", *f.Keyword)
	}
	if f.CategoryID != nil {
		raw.Set("categoryId", *f.CategoryID)
	}
	if f.MinPrice != nil {
		raw.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		raw.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Attributes != nil && *f.Attributes != "" {
		var attrs map[string]string
		if err := json.Unmarshal([]byte(*f.Attributes), &attrs); err != nil {
			return nil, fmt.Errorf("attributes: invalid JSON object: %w", err)
		}
		for code, values := range attrs {
			raw.Set("attributes["+code+"]", values)
		}
	}
	if f.SortBy != nil {
		raw.Set("sortBy", *f.SortBy)
	}
	if f.SortOrder != nil {
		raw.Set("sortOrder", *f.SortOrder)
	}
	if f.Page != nil {
		raw.Set("page", strconv.Itoa(int(*f.Page)))
	}
	if f.Limit != nil {
		raw.Set("limit", strconv.Itoa(int(*f.Limit)))
	}
	return raw, nil
}

func searchResultToModel(res *searchService.SearchResult) *gqlmodels.SearchResult {
	out := &gqlmodels.SearchResult{
		Products: make([]*gqlmodels.Product, 0, len(res.Products)),
		Facets:   facetsToModel(res.Facets),
		Pagination: &gqlmodels.Pagination{
			Total:      int32(res.Pagination.Total),
			Page:       int32(res.Pagination.Page),
			Limit:      int32(res.Pagination.Limit),
			TotalPages: int32(res.Pagination.TotalPages),
		},
	}
	for i := range res.Products {
		out.Products = append(out.Products, productToModel(&res.Products[i]))
	}
	return out
}

func facetsToModel(f searchService.FacetResult) *gqlmodels.Facets {
	out := &gqlmodels.Facets{
		Categories: make([]*gqlmodels.CategoryFacet, 0, len(f.Categories)),
		Attributes: make([]*gqlmodels.AttributeFacet, 0, len(f.Attributes)),
	}
	for _, c := range f.Categories {
		out.Categories = append(out.Categories, &gqlmodels.CategoryFacet{
			CategoryID: toID(c.CategoryID),
			Name:       c.Name,
			URLKey:     c.URLKey,
			Count:      int32(c.Count),
		})
	}
	if f.PriceRange != nil {
		out.PriceRange = &gqlmodels.PriceRange{Min: f.PriceRange.Min, Max: f.PriceRange.Max}
	}
	for _, a := range f.Attributes {
		vals := make([]*gqlmodels.ValueCount, 0, len(a.Values))
		for _, v := range a.Values {
			vals = append(vals, &gqlmodels.ValueCount{Value: v.Value, Count: int32(v.Count)})
		}
		out.Attributes = append(out.Attributes, &gqlmodels.AttributeFacet{
			Code:   a.Code,
			Label:  a.Label,
			Values: vals,
		})
	}
	return out
}
