package servicetest

import (
	"context"
	"errors"

	catalogEntity "shopsearch.GO/model/entity/catalog"
	searchService "shopsearch.GO/service/search"
)

var errStoreDown = errors.New("store down")

// failingStore errors on every call. Used to prove validation runs before any
// store access and that store failures surface as StoreError.
type failingStore struct{}

var _ searchService.CatalogStore = failingStore{}

func (failingStore) QueryProducts(ctx context.Context, plan searchService.Plan, sort searchService.SortSpec, offset, limit int) ([]catalogEntity.Product, error) {
	return nil, errStoreDown
}

func (failingStore) CountProducts(ctx context.Context, plan searchService.Plan) (int64, error) {
	return 0, errStoreDown
}

func (failingStore) CountByCategory(ctx context.Context, plan searchService.Plan) ([]searchService.CategoryCount, error) {
	return nil, errStoreDown
}

func (failingStore) CountByAttribute(ctx context.Context, plan searchService.Plan, code string) ([]searchService.ValueCount, error) {
	return nil, errStoreDown
}

func (failingStore) PriceRange(ctx context.Context, plan searchService.Plan) (float64, float64, bool, error) {
	return 0, 0, false, errStoreDown
}

func (failingStore) SuggestProducts(ctx context.Context, term string, limit int) ([]searchService.SuggestionRow, error) {
	return nil, errStoreDown
}

func (failingStore) SuggestCategories(ctx context.Context, term string, limit int) ([]searchService.SuggestionRow, error) {
	return nil, errStoreDown
}

func (failingStore) ListAttributes(ctx context.Context) ([]catalogEntity.Attribute, error) {
	return nil, errStoreDown
}
