package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	catalogApi "shopsearch.GO/api/catalog"
	catalogEntity "shopsearch.GO/model/entity/catalog"
)

func importTestEnv(t *testing.T) *echo.Echo {
	t.Helper()
	e := searchTestEnv(t) // shared seeded DB
	apiGroup := e.Group("/api")
	catalogApi.RegisterCatalogRoutes(apiGroup, envDB)
	return e
}

func TestCatalogImportAPI_CreateAndUpdate(t *testing.T) {
	e := importTestEnv(t)

	body := `{"items":[
		{"sku":"IMP-1","name":"Imported Boot","url_key":"imported-boot","price":59.9,"categories":["Shoes"],"attributes":{"color":"green"}},
		{"sku":"","name":"No SKU"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/catalog/import", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Created  int      `json:"created"`
		Updated  int      `json:"updated"`
		Skipped  int      `json:"skipped"`
		Warnings []string `json:"warnings"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Created != 1 || resp.Skipped != 1 {
		t.Errorf("created/skipped = %d/%d, want 1/1", resp.Created, resp.Skipped)
	}
	if len(resp.Warnings) == 0 {
		t.Error("want a warning for the row without sku")
	}

	var prod catalogEntity.Product
	if err := envDB.Where("sku = ?", "IMP-1").First(&prod).Error; err != nil {
		t.Fatalf("imported product not found: %v", err)
	}

	// Re-import the same SKU with a new price: update, not create.
	body = `{"items":[{"sku":"IMP-1","name":"Imported Boot","url_key":"imported-boot","price":49.9}]}`
	req = httptest.NewRequest(http.MethodPost, "/api/catalog/import", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Updated != 1 || resp.Created != 0 {
		t.Errorf("created/updated = %d/%d, want 0/1", resp.Created, resp.Updated)
	}
}

func TestCatalogImportAPI_EmptyItems(t *testing.T) {
	e := importTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/import", strings.NewReader(`{"items":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
