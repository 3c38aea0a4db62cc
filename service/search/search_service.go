package search

import (
	"context"
	"log"
	"net/url"
	"time"

	"shopsearch.GO/core/cache"
	catalogEntity "shopsearch.GO/model/entity/catalog"
)

const (
	// CacheTagAttributes tags cached attribute metadata; catalog imports
	// invalidate it.
	CacheTagAttributes = "catalog_attributes"

	cacheKeyAttributes = "search:attributes"
	attributeCacheTTL  = 300 // seconds
)

// Options bound page sizes and store latency.
type Options struct {
	DefaultLimit int
	MaxLimit     int
	SuggestLimit int
	Timeout      time.Duration
}

func (o Options) withDefaults() Options {
	if o.DefaultLimit < 1 {
		o.DefaultLimit = 20
	}
	if o.MaxLimit < 1 {
		o.MaxLimit = 100
	}
	if o.SuggestLimit < 1 {
		o.SuggestLimit = 10
	}
	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Second
	}
	return o
}

// SearchResult is the combined response: one ordered page, facet metadata
// consistent with the applied filters, and pagination over the full match set.
type SearchResult struct {
	Products   []catalogEntity.Product `json:"products"`
	Facets     FacetResult             `json:"facets"`
	Pagination Pagination              `json:"pagination"`
}

// Service is the query-composition and facet-aggregation engine. Reads go
// through the CatalogStore interface; the popularity increment is the only
// mutation and goes through TermCounter.
type Service struct {
	store   CatalogStore
	counter TermCounter
	matcher *KeywordMatcher
	opts    Options
}

func NewService(store CatalogStore, counter TermCounter, matcher *KeywordMatcher, opts Options) *Service {
	if counter == nil {
		counter = NewMemoryTermCounter()
	}
	return &Service{
		store:   store,
		counter: counter,
		matcher: matcher,
		opts:    opts.withDefaults(),
	}
}

// Counter exposes the term counter (snapshot job, seeding).
func (s *Service) Counter() TermCounter {
	return s.counter
}

// Search validates raw filter input, plans the query, and returns one page
// plus facets. Validation always happens before any store access.
func (s *Service) Search(ctx context.Context, raw url.Values) (*SearchResult, error) {
	spec, err := ParseFilters(raw, s.opts.DefaultLimit, s.opts.MaxLimit)
	if err != nil {
		return nil, err
	}
	return s.SearchSpec(ctx, spec)
}

// SearchSpec runs a search for an already-validated FilterSpec.
func (s *Service) SearchSpec(ctx context.Context, spec *FilterSpec) (*SearchResult, error) {
	parent := ctx
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	attrs, err := s.attributes(ctx)
	if err != nil {
		return nil, storeErr("attributes", err)
	}
	ResolveAttributes(spec, attrs)

	plan := BuildPlan(spec)
	if plan.Keyword != "" && s.matcher.Enabled() {
		ids, err := s.matcher.MatchIDs(ctx, plan.Keyword, 0)
		if err != nil {
			// Degrade to the SQL substring match
			log.Printf("keyword matcher unavailable, falling back to SQL: %v", err)
		} else {
			plan.KeywordIDs = ids
		}
	}

	total, err := s.store.CountProducts(ctx, plan)
	if err != nil {
		return nil, storeErr("count", err)
	}
	pagination, offset := paginate(total, spec.Page, spec.Limit)

	products := []catalogEntity.Product{}
	if int64(offset) < total {
		products, err = s.store.QueryProducts(ctx, plan, buildSort(spec), offset, spec.Limit)
		if err != nil {
			return nil, storeErr("page", err)
		}
	}

	facets, err := aggregateFacets(ctx, s.store, plan, attrs)
	if err != nil {
		return nil, err
	}

	// The sole mutation: recorded once the search completed, against the
	// caller's context so a store timeout above never half-applies it.
	if spec.Keyword != "" {
		if err := s.counter.Record(parent, spec.Keyword); err != nil {
			log.Printf("record search term %q: %v", spec.Keyword, err)
		}
	}

	return &SearchResult{
		Products:   products,
		Facets:     *facets,
		Pagination: pagination,
	}, nil
}

// PopularTerms returns the top searched keywords, count desc, most recent
// first on ties.
func (s *Service) PopularTerms(ctx context.Context, limit int) ([]PopularTerm, error) {
	if limit < 1 || limit > s.opts.MaxLimit {
		limit = s.opts.SuggestLimit
	}
	return s.counter.Top(ctx, limit)
}

// attributes returns filterable attribute metadata, cached under
// CacheTagAttributes.
func (s *Service) attributes(ctx context.Context) ([]catalogEntity.Attribute, error) {
	c := cache.GetInstance()
	if v, ok := c.Get(cacheKeyAttributes); ok {
		if attrs, ok := v.([]catalogEntity.Attribute); ok {
			return attrs, nil
		}
	}
	attrs, err := s.store.ListAttributes(ctx)
	if err != nil {
		return nil, err
	}
	c.Set(cacheKeyAttributes, attrs, attributeCacheTTL, []string{CacheTagAttributes})
	return attrs, nil
}

// WarmAttributes re-reads attribute metadata from the store and refreshes the
// cached copy, so the first search after a TTL expiry does not pay the read.
func (s *Service) WarmAttributes(ctx context.Context) error {
	attrs, err := s.store.ListAttributes(ctx)
	if err != nil {
		return err
	}
	cache.GetInstance().Set(cacheKeyAttributes, attrs, attributeCacheTTL, []string{CacheTagAttributes})
	return nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opts.Timeout)
}
