package search

import "sort"

// Plan is the result predicate: the conjunction of every active filter
// constraint. A facet predicate is a Plan with one dimension's own constraint
// removed (WithoutCategory, WithoutPrice, WithoutAttribute); the keyword is a
// global relevance constraint and stays in every facet predicate.
type Plan struct {
	Keyword    string // case-folded substring matched against name and description
	KeywordIDs []uint // optional pre-matched entity IDs (Elasticsearch path); nil means not used
	CategoryID *uint
	MinPrice   *float64
	MaxPrice   *float64
	Attributes map[string][]string
}

// BuildPlan converts a validated FilterSpec into the result predicate.
// An attribute with an empty value set is no constraint, not "matches nothing".
func BuildPlan(spec *FilterSpec) Plan {
	p := Plan{
		Keyword:    spec.Term,
		CategoryID: spec.CategoryID,
		MinPrice:   spec.MinPrice,
		MaxPrice:   spec.MaxPrice,
	}
	for code, vals := range spec.Attributes {
		if len(vals) == 0 {
			continue
		}
		if p.Attributes == nil {
			p.Attributes = make(map[string][]string, len(spec.Attributes))
		}
		p.Attributes[code] = vals
	}
	return p
}

// AttributeCodes returns the constrained attribute codes in deterministic order.
func (p Plan) AttributeCodes() []string {
	codes := make([]string, 0, len(p.Attributes))
	for code := range p.Attributes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// WithoutCategory returns the facet predicate for the category dimension.
func (p Plan) WithoutCategory() Plan {
	q := p
	q.CategoryID = nil
	return q
}

// WithoutPrice returns the facet predicate for the price dimension.
func (p Plan) WithoutPrice() Plan {
	q := p
	q.MinPrice = nil
	q.MaxPrice = nil
	return q
}

// WithoutAttribute returns the facet predicate for one attribute dimension:
// that attribute's own constraint removed, every other constraint retained.
func (p Plan) WithoutAttribute(code string) Plan {
	q := p
	if _, ok := p.Attributes[code]; !ok {
		return q
	}
	q.Attributes = make(map[string][]string, len(p.Attributes))
	for c, vals := range p.Attributes {
		if c != code {
			q.Attributes[c] = vals
		}
	}
	return q
}
