package search

import (
	"context"
	"sort"
	"strings"
)

type SuggestionType string

const (
	SuggestionProduct  SuggestionType = "product"
	SuggestionCategory SuggestionType = "category"
)

// Suggestion is one ranked autocomplete entry.
type Suggestion struct {
	Type        SuggestionType `json:"type"`
	DisplayName string         `json:"display_name"`
	Slug        string         `json:"slug"`
}

// Suggest returns up to limit autocomplete suggestions mixing product and
// category name matches. Prefix matches rank above substring matches, ties
// break by popularity desc then name asc. Fewer matches than limit is not an
// error.
func (s *Service) Suggest(ctx context.Context, keyword string, limit int) ([]Suggestion, error) {
	term := strings.ToLower(strings.TrimSpace(keyword))
	if term == "" {
		return nil, &ValidationError{Field: "keyword", Message: "keyword is required"}
	}
	if limit < 1 {
		limit = s.opts.SuggestLimit
	}
	if limit > s.opts.SuggestLimit {
		limit = s.opts.SuggestLimit
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	products, err := s.store.SuggestProducts(ctx, term, limit)
	if err != nil {
		return nil, storeErr("suggest:product", err)
	}
	categories, err := s.store.SuggestCategories(ctx, term, limit)
	if err != nil {
		return nil, storeErr("suggest:category", err)
	}

	type candidate struct {
		row SuggestionRow
		typ SuggestionType
	}
	all := make([]candidate, 0, len(products)+len(categories))
	for _, row := range products {
		all = append(all, candidate{row, SuggestionProduct})
	}
	for _, row := range categories {
		all = append(all, candidate{row, SuggestionCategory})
	}
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i].row, all[j].row
		if a.Prefix != b.Prefix {
			return a.Prefix
		}
		if a.Popularity != b.Popularity {
			return a.Popularity > b.Popularity
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	if len(all) > limit {
		all = all[:limit]
	}
	out := make([]Suggestion, len(all))
	for i, c := range all {
		out[i] = Suggestion{Type: c.typ, DisplayName: c.row.Name, Slug: c.row.URLKey}
	}
	return out, nil
}
