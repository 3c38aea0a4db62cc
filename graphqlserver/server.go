package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"shopsearch.GO/graphql"
	gqlmodels "shopsearch.GO/graphql/models"
	"shopsearch.GO/graphql/registry"
	"shopsearch.GO/graphql/resolvers"
	searchService "shopsearch.GO/service/search"
)

// RootResolver is the root for graphql-go. All query fields delegate to the
// shared search service.
type RootResolver struct {
	Svc *searchService.Service
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{svc: r.Svc}
}

// QueryResolver adapts graphql-go argument structs onto the resolvers package.
type QueryResolver struct {
	svc *searchService.Service
}

// SearchArgs matches the search query arguments.
type SearchArgs struct {
	Filters *resolvers.SearchFilters
}

func (r *QueryResolver) Search(ctx context.Context, args SearchArgs) (*gqlmodels.SearchResult, error) {
	return resolvers.NewResolver(r.svc).Query().Search(ctx, args.Filters)
}

// SuggestArgs matches the suggest query arguments.
type SuggestArgs struct {
	Keyword string
	Limit   *int32
}

func (r *QueryResolver) Suggest(ctx context.Context, args SuggestArgs) ([]*gqlmodels.Suggestion, error) {
	return resolvers.NewResolver(r.svc).Query().Suggest(ctx, args.Keyword, args.Limit)
}

// PopularTermsArgs matches the popularTerms query arguments.
type PopularTermsArgs struct {
	Limit *int32
}

func (r *QueryResolver) PopularTerms(ctx context.Context, args PopularTermsArgs) ([]*gqlmodels.PopularTerm, error) {
	return resolvers.NewResolver(r.svc).Query().PopularTerms(ctx, args.Limit)
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema (base plus extensions) against the root resolver.
func NewSchema(svc *searchService.Service) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Svc: svc}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
