package graphqltest

import (
	"context"

	catalogEntity "shopsearch.GO/model/entity/catalog"
	searchService "shopsearch.GO/service/search"
)

// stubStore serves a fixed two-product catalog so graphql tests need no DB.
type stubStore struct{}

var _ searchService.CatalogStore = stubStore{}

var stubProducts = []catalogEntity.Product{
	{EntityID: 1, SKU: "GQL-1", Name: "Trail Boot", URLKey: "trail-boot", Price: 120, Popularity: 7},
	{EntityID: 2, SKU: "GQL-2", Name: "City Sneaker", URLKey: "city-sneaker", Price: 80, Popularity: 3},
}

func (stubStore) QueryProducts(ctx context.Context, plan searchService.Plan, sort searchService.SortSpec, offset, limit int) ([]catalogEntity.Product, error) {
	if offset >= len(stubProducts) {
		return nil, nil
	}
	end := offset + limit
	if end > len(stubProducts) {
		end = len(stubProducts)
	}
	return stubProducts[offset:end], nil
}

func (stubStore) CountProducts(ctx context.Context, plan searchService.Plan) (int64, error) {
	return int64(len(stubProducts)), nil
}

func (stubStore) CountByCategory(ctx context.Context, plan searchService.Plan) ([]searchService.CategoryCount, error) {
	return []searchService.CategoryCount{
		{CategoryID: 1, Name: "Footwear", URLKey: "footwear", Count: 2},
	}, nil
}

func (stubStore) CountByAttribute(ctx context.Context, plan searchService.Plan, code string) ([]searchService.ValueCount, error) {
	return []searchService.ValueCount{{Value: "black", Count: 2}}, nil
}

func (stubStore) PriceRange(ctx context.Context, plan searchService.Plan) (float64, float64, bool, error) {
	return 80, 120, true, nil
}

func (stubStore) SuggestProducts(ctx context.Context, term string, limit int) ([]searchService.SuggestionRow, error) {
	return []searchService.SuggestionRow{
		{Name: "Trail Boot", URLKey: "trail-boot", Popularity: 7, Prefix: true},
	}, nil
}

func (stubStore) SuggestCategories(ctx context.Context, term string, limit int) ([]searchService.SuggestionRow, error) {
	return nil, nil
}

func (stubStore) ListAttributes(ctx context.Context) ([]catalogEntity.Attribute, error) {
	return []catalogEntity.Attribute{{AttributeID: 1, Code: "color", Label: "Color", Filterable: 1}}, nil
}
