package graphqltest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	graphqlApi "shopsearch.GO/api/graphql"
	"shopsearch.GO/graphqlserver"
	searchService "shopsearch.GO/service/search"
)

var (
	schemaOnce sync.Once
	schema     *gql.Schema
	schemaErr  error
)

func testSchema(t *testing.T) *gql.Schema {
	t.Helper()
	schemaOnce.Do(func() {
		svc := searchService.NewService(stubStore{}, searchService.NewMemoryTermCounter(), nil, searchService.Options{})
		schema, schemaErr = graphqlserver.NewSchema(svc)
	})
	if schemaErr != nil {
		t.Fatalf("schema: %v", schemaErr)
	}
	return schema
}

func runQuery(t *testing.T, query string, variables map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	graphqlApi.RegisterGraphQLRoutesWithSchema(e, testSchema(t))

	body := map[string]interface{}{"query": query}
	if variables != nil {
		body["variables"] = variables
	}
	bodyBytes, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Data   map[string]interface{}
		Errors []struct{ Message string }
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	return resp.Data
}

func TestGraphQL_Search(t *testing.T) {
	rec := runQuery(t, `query {
		search(filters: {keyword: "boot"}) {
			products { entityId sku name finalPrice }
			facets {
				categories { name count }
				priceRange { min max }
				attributes { code values { value count } }
			}
			pagination { total totalPages }
		}
	}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := decode(t, rec)

	search := data["search"].(map[string]interface{})
	products := search["products"].([]interface{})
	if len(products) != 2 {
		t.Fatalf("products = %d, want 2", len(products))
	}
	first := products[0].(map[string]interface{})
	if first["sku"] != "GQL-1" || first["entityId"] != "1" {
		t.Errorf("first product = %v, want GQL-1 with string id", first)
	}

	facets := search["facets"].(map[string]interface{})
	pr := facets["priceRange"].(map[string]interface{})
	if pr["min"].(float64) != 80 || pr["max"].(float64) != 120 {
		t.Errorf("priceRange = %v, want 80..120", pr)
	}

	pagination := search["pagination"].(map[string]interface{})
	if int(pagination["total"].(float64)) != 2 {
		t.Errorf("total = %v, want 2", pagination["total"])
	}
}

func TestGraphQL_SearchInvalidFilters(t *testing.T) {
	rec := runQuery(t, `query {
		search(filters: {minPrice: 50, maxPrice: 10}) { pagination { total } }
	}`, nil)
	var resp struct {
		Errors []struct{ Message string }
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) == 0 {
		t.Fatal("want a validation error in the errors array")
	}
}

func TestGraphQL_Suggest(t *testing.T) {
	rec := runQuery(t, `query {
		suggest(keyword: "tra") { type displayName slug }
	}`, nil)
	data := decode(t, rec)

	suggestions := data["suggest"].([]interface{})
	if len(suggestions) != 1 {
		t.Fatalf("suggestions = %d, want 1", len(suggestions))
	}
	s := suggestions[0].(map[string]interface{})
	if s["type"] != "product" || s["slug"] != "trail-boot" {
		t.Errorf("suggestion = %v, want product trail-boot", s)
	}
}

func TestGraphQL_PopularTerms(t *testing.T) {
	// A search records its keyword; popularTerms then surfaces it.
	_ = runQuery(t, `query { search(filters: {keyword: "boot"}) { pagination { total } } }`, nil)

	rec := runQuery(t, `query { popularTerms(limit: 5) { term count } }`, nil)
	data := decode(t, rec)

	terms := data["popularTerms"].([]interface{})
	found := false
	for _, raw := range terms {
		term := raw.(map[string]interface{})
		if term["term"] == "boot" && term["count"].(float64) >= 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("terms = %v, want boot with count >= 1", terms)
	}
}

func TestGraphQL_ExtensionResolver(t *testing.T) {
	rec := runQuery(t, `query { extension(name: "ping") }`, nil)
	data := decode(t, rec)

	raw, ok := data["extension"].(string)
	if !ok {
		t.Fatalf("extension = %v, want JSON string", data["extension"])
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["pong"] != "ok" {
		t.Errorf("out = %v, want pong ok", out)
	}
}

func TestGraphQL_Playground(t *testing.T) {
	e := echo.New()
	graphqlApi.RegisterGraphQLRoutesWithSchema(e, testSchema(t))

	req := httptest.NewRequest(http.MethodGet, "/playground", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
