package search

import (
	"reflect"
	"testing"
)

func TestBuildPlan_EmptyAttributeSetIsNoConstraint(t *testing.T) {
	spec := &FilterSpec{
		Term:       "shoe",
		Attributes: map[string][]string{"color": {}},
	}
	plan := BuildPlan(spec)
	if plan.Attributes != nil {
		t.Errorf("Attributes = %v, want nil (empty set means unconstrained)", plan.Attributes)
	}
}

func TestPlan_WithoutCategory(t *testing.T) {
	cid := uint(7)
	min := 10.0
	plan := Plan{Keyword: "shoe", CategoryID: &cid, MinPrice: &min}

	facet := plan.WithoutCategory()
	if facet.CategoryID != nil {
		t.Error("category constraint should be removed")
	}
	if facet.Keyword != "shoe" || facet.MinPrice == nil {
		t.Error("other constraints must be retained")
	}
	if plan.CategoryID == nil {
		t.Error("original plan must not be mutated")
	}
}

func TestPlan_WithoutAttribute(t *testing.T) {
	plan := Plan{Attributes: map[string][]string{
		"color": {"red"},
		"size":  {"m"},
	}}

	facet := plan.WithoutAttribute("color")
	if _, ok := facet.Attributes["color"]; ok {
		t.Error("color constraint should be removed")
	}
	if got := facet.Attributes["size"]; len(got) != 1 || got[0] != "m" {
		t.Errorf("size = %v, want [m]", got)
	}
	if len(plan.Attributes) != 2 {
		t.Error("original plan must not be mutated")
	}

	// Removing an unconstrained dimension is a no-op
	same := plan.WithoutAttribute("material")
	if !reflect.DeepEqual(same.Attributes, plan.Attributes) {
		t.Error("removing an absent attribute must not change the plan")
	}
}

func TestPlan_AttributeCodesDeterministic(t *testing.T) {
	plan := Plan{Attributes: map[string][]string{
		"size": {"m"}, "color": {"red"}, "brand": {"acme"},
	}}
	want := []string{"brand", "color", "size"}
	for i := 0; i < 10; i++ {
		if got := plan.AttributeCodes(); !reflect.DeepEqual(got, want) {
			t.Fatalf("AttributeCodes = %v, want %v", got, want)
		}
	}
}
