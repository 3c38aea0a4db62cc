package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	catalogEntity "shopsearch.GO/model/entity/catalog"
)

// PriceRange is the observed effective-price range under the result predicate
// with the price constraint removed.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type CategoryFacet = CategoryCount

// AttributeFacet holds the ranked value counts for one attribute dimension.
type AttributeFacet struct {
	Code   string       `json:"code"`
	Label  string       `json:"label"`
	Values []ValueCount `json:"values"`
}

// FacetResult carries "what if I also pick X" counts: every count is computed
// against the plan with that dimension's own constraint removed, so picking a
// shown value always yields exactly that many products.
type FacetResult struct {
	Categories []CategoryFacet  `json:"categories"`
	PriceRange *PriceRange      `json:"price_range,omitempty"`
	Attributes []AttributeFacet `json:"attributes"`
}

// aggregateFacets evaluates every facet dimension concurrently against its own
// facet predicate. attrs fixes the attribute ordering; zero-count dimensions
// are omitted.
func aggregateFacets(ctx context.Context, store CatalogStore, plan Plan, attrs []catalogEntity.Attribute) (*FacetResult, error) {
	res := &FacetResult{}
	attrValues := make([][]ValueCount, len(attrs))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cats, err := store.CountByCategory(gctx, plan.WithoutCategory())
		if err != nil {
			return storeErr("facet:category", err)
		}
		res.Categories = cats
		return nil
	})

	g.Go(func() error {
		min, max, ok, err := store.PriceRange(gctx, plan.WithoutPrice())
		if err != nil {
			return storeErr("facet:price", err)
		}
		if ok {
			res.PriceRange = &PriceRange{Min: min, Max: max}
		}
		return nil
	})

	for i, attr := range attrs {
		i, code := i, attr.Code
		g.Go(func() error {
			vals, err := store.CountByAttribute(gctx, plan.WithoutAttribute(code), code)
			if err != nil {
				return storeErr("facet:"+code, err)
			}
			attrValues[i] = vals
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if res.Categories == nil {
		res.Categories = []CategoryFacet{}
	}
	res.Attributes = make([]AttributeFacet, 0, len(attrs))
	for i, attr := range attrs {
		if len(attrValues[i]) == 0 {
			continue
		}
		res.Attributes = append(res.Attributes, AttributeFacet{
			Code:   attr.Code,
			Label:  attr.Label,
			Values: attrValues[i],
		})
	}
	return res, nil
}
