package resolvers

import (
	"context"

	gqlmodels "shopsearch.GO/graphql/models"
)

// Suggest returns ranked autocomplete entries for a partial keyword.
func (r *QueryResolver) Suggest(ctx context.Context, keyword string, limit *int32) ([]*gqlmodels.Suggestion, error) {
	n := 0
	if limit != nil {
		n = int(*limit)
	}
	rows, err := r.svc.Suggest(ctx, keyword, n)
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.Suggestion, 0, len(rows))
	for _, s := range rows {
		out = append(out, &gqlmodels.Suggestion{
			Type:        string(s.Type),
			DisplayName: s.DisplayName,
			Slug:        s.Slug,
		})
	}
	return out, nil
}

// PopularTerms returns the most searched terms, highest count first.
func (r *QueryResolver) PopularTerms(ctx context.Context, limit *int32) ([]*gqlmodels.PopularTerm, error) {
	n := 0
	if limit != nil {
		n = int(*limit)
	}
	rows, err := r.svc.PopularTerms(ctx, n)
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.PopularTerm, 0, len(rows))
	for _, t := range rows {
		out = append(out, &gqlmodels.PopularTerm{Term: t.Term, Count: int32(t.Count)})
	}
	return out, nil
}
