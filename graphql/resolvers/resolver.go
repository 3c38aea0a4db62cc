package resolvers

import (
	searchService "shopsearch.GO/service/search"
)

// Resolver is the entry point for graphql resolvers. One per request is
// cheap; the search service behind it is a process-wide singleton.
type Resolver struct {
	svc *searchService.Service
}

func NewResolver(svc *searchService.Service) *Resolver {
	return &Resolver{svc: svc}
}

// Query returns the query resolver.
func (r *Resolver) Query() *QueryResolver {
	return &QueryResolver{svc: r.svc}
}

// QueryResolver implements the Query fields against the search service.
type QueryResolver struct {
	svc *searchService.Service
}
