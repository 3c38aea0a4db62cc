package search

import (
	"net/url"
	"testing"

	catalogEntity "shopsearch.GO/model/entity/catalog"
)

func TestParseFilters_Defaults(t *testing.T) {
	spec, err := ParseFilters(url.Values{}, 20, 100)
	if err != nil {
		t.Fatalf("ParseFilters: %v", err)
	}
	if spec.Page != 1 || spec.Limit != 20 {
		t.Errorf("page/limit = %d/%d, want 1/20", spec.Page, spec.Limit)
	}
	if spec.SortBy != SortRelevance || spec.SortOrder != OrderDesc {
		t.Errorf("sort = %s %s, want relevance desc", spec.SortBy, spec.SortOrder)
	}
	if spec.Keyword != "" || spec.CategoryID != nil || spec.MinPrice != nil {
		t.Error("empty input should produce an unconstrained spec")
	}
}

func TestParseFilters_KeywordFolding(t *testing.T) {
	raw := url.Values{"keyword": {"  Pro Runner  "}}
	spec, err := ParseFilters(raw, 20, 100)
	if err != nil {
		t.Fatalf("ParseFilters: %v", err)
	}
	if spec.Keyword != "Pro Runner" {
		t.Errorf("Keyword = %q, want trimmed original", spec.Keyword)
	}
	if spec.Term != "pro runner" {
		t.Errorf("Term = %q, want case-folded", spec.Term)
	}
}

func TestParseFilters_Validation(t *testing.T) {
	cases := []struct {
		name  string
		raw   url.Values
		field string
	}{
		{"bad category", url.Values{"categoryId": {"abc"}}, "categoryId"},
		{"zero category", url.Values{"categoryId": {"0"}}, "categoryId"},
		{"negative price", url.Values{"minPrice": {"-1"}}, "minPrice"},
		{"price not a number", url.Values{"maxPrice": {"cheap"}}, "maxPrice"},
		{"min over max", url.Values{"minPrice": {"50"}, "maxPrice": {"10"}}, "minPrice"},
		{"unknown sort key", url.Values{"sortBy": {"rank"}}, "sortBy"},
		{"bad sort order", url.Values{"sortOrder": {"sideways"}}, "sortOrder"},
		{"page zero", url.Values{"page": {"0"}}, "page"},
		{"limit over max", url.Values{"limit": {"101"}}, "limit"},
		{"limit zero", url.Values{"limit": {"0"}}, "limit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFilters(tc.raw, 20, 100)
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if ve.Field != tc.field {
				t.Errorf("Field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}

func TestParseFilters_EqualMinMaxAllowed(t *testing.T) {
	raw := url.Values{"minPrice": {"25"}, "maxPrice": {"25"}}
	spec, err := ParseFilters(raw, 20, 100)
	if err != nil {
		t.Fatalf("ParseFilters: %v", err)
	}
	if *spec.MinPrice != 25 || *spec.MaxPrice != 25 {
		t.Errorf("range = [%v, %v], want [25, 25]", *spec.MinPrice, *spec.MaxPrice)
	}
}

func TestParseFilters_Attributes(t *testing.T) {
	raw := url.Values{
		"attributes[Color]": {"Red,BLUE , red"},
		"attributes[size]":  {"m", "l"},
		"attributes[]":      {"ignored"},
	}
	spec, err := ParseFilters(raw, 20, 100)
	if err != nil {
		t.Fatalf("ParseFilters: %v", err)
	}
	if got := spec.Attributes["color"]; len(got) != 2 || got[0] != "red" || got[1] != "blue" {
		t.Errorf("color = %v, want [red blue] (folded, deduped)", got)
	}
	if got := spec.Attributes["size"]; len(got) != 2 {
		t.Errorf("size = %v, want two values", got)
	}
	if _, ok := spec.Attributes[""]; ok {
		t.Error("empty attribute name must be ignored")
	}
}

func TestResolveAttributes_DropsUnknown(t *testing.T) {
	spec := &FilterSpec{Attributes: map[string][]string{
		"color":    {"red"},
		"nosuch":   {"x"},
	}}
	known := []catalogEntity.Attribute{{Code: "Color", Label: "Color", Filterable: 1}}
	ResolveAttributes(spec, known)

	if len(spec.Attributes) != 1 {
		t.Fatalf("attributes = %v, want only the resolved one", spec.Attributes)
	}
	// Resolved under the canonical code from the attribute definition
	if got := spec.Attributes["Color"]; len(got) != 1 || got[0] != "red" {
		t.Errorf("Color = %v, want [red]", got)
	}
}
