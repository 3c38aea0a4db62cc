package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	catalogEntity "shopsearch.GO/model/entity/catalog"
)

type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortPrice      SortKey = "price"
	SortName       SortKey = "name"
	SortNewest     SortKey = "newest"
	SortPopularity SortKey = "popularity"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// FilterSpec is the canonical, validated form of a search request.
type FilterSpec struct {
	Keyword    string              // verbatim (trimmed) keyword, kept for display and popularity tracking
	Term       string              // case-folded keyword used for matching
	CategoryID *uint
	MinPrice   *float64
	MaxPrice   *float64
	Attributes map[string][]string // canonical attribute code -> allowed values
	SortBy     SortKey
	SortOrder  SortOrder
	Page       int
	Limit      int
}

var sortKeys = map[SortKey]bool{
	SortRelevance: true, SortPrice: true, SortName: true, SortNewest: true, SortPopularity: true,
}

// ParseFilters turns raw query values into a FilterSpec or fails with a
// *ValidationError naming the offending field. Pure: no store access, no
// clamping beyond the page/limit defaults. Attribute filter keys are kept
// lowercased; ResolveAttributes matches them against known attribute codes
// afterwards, so validation never touches the store.
func ParseFilters(raw url.Values, defaultLimit, maxLimit int) (*FilterSpec, error) {
	spec := &FilterSpec{
		SortBy:     SortRelevance,
		SortOrder:  OrderDesc,
		Page:       1,
		Limit:      defaultLimit,
		Attributes: make(map[string][]string),
	}

	spec.Keyword = strings.TrimSpace(raw.Get("keyword"))
	spec.Term = strings.ToLower(spec.Keyword)

	if v := raw.Get("categoryId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil || id == 0 {
			return nil, &ValidationError{Field: "categoryId", Message: "must be a positive integer"}
		}
		cid := uint(id)
		spec.CategoryID = &cid
	}

	var err error
	if spec.MinPrice, err = parsePrice(raw.Get("minPrice"), "minPrice"); err != nil {
		return nil, err
	}
	if spec.MaxPrice, err = parsePrice(raw.Get("maxPrice"), "maxPrice"); err != nil {
		return nil, err
	}
	if spec.MinPrice != nil && spec.MaxPrice != nil && *spec.MinPrice > *spec.MaxPrice {
		return nil, &ValidationError{Field: "minPrice", Message: "minPrice must not exceed maxPrice"}
	}

	if v := raw.Get("sortBy"); v != "" {
		key := SortKey(strings.ToLower(v))
		if !sortKeys[key] {
			return nil, &ValidationError{Field: "sortBy", Message: "unknown sort key " + v}
		}
		spec.SortBy = key
	}
	if v := raw.Get("sortOrder"); v != "" {
		switch SortOrder(strings.ToLower(v)) {
		case OrderAsc:
			spec.SortOrder = OrderAsc
		case OrderDesc:
			spec.SortOrder = OrderDesc
		default:
			return nil, &ValidationError{Field: "sortOrder", Message: "must be asc or desc"}
		}
	}

	if v := raw.Get("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			return nil, &ValidationError{Field: "page", Message: "must be an integer >= 1"}
		}
		spec.Page = p
	}
	if v := raw.Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 1 || l > maxLimit {
			return nil, &ValidationError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", maxLimit)}
		}
		spec.Limit = l
	}

	// attributes[color]=red,blue
	for key, vals := range raw {
		if !strings.HasPrefix(key, "attributes[") || !strings.HasSuffix(key, "]") {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(key[len("attributes[") : len(key)-1]))
		if name == "" {
			continue
		}
		for _, rawVal := range vals {
			for _, v := range strings.Split(rawVal, ",") {
				v = strings.ToLower(strings.TrimSpace(v))
				if v == "" {
					continue
				}
				if !contains(spec.Attributes[name], v) {
					spec.Attributes[name] = append(spec.Attributes[name], v)
				}
			}
		}
	}

	return spec, nil
}

// ResolveAttributes matches the parsed attribute filter keys case-insensitively
// against known attribute codes. Unknown attribute names are dropped rather
// than rejected: the filter degrades to "no constraint".
func ResolveAttributes(spec *FilterSpec, known []catalogEntity.Attribute) {
	if len(spec.Attributes) == 0 {
		return
	}
	codes := make(map[string]string, len(known))
	for _, a := range known {
		codes[strings.ToLower(a.Code)] = a.Code
	}
	resolved := make(map[string][]string, len(spec.Attributes))
	for name, vals := range spec.Attributes {
		if code, ok := codes[name]; ok {
			resolved[code] = vals
		}
	}
	spec.Attributes = resolved
}

func parsePrice(v, field string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return nil, &ValidationError{Field: field, Message: "must be a non-negative number"}
	}
	return &f, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
