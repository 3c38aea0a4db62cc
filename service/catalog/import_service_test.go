package catalog

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	catalogEntity "shopsearch.GO/model/entity/catalog"
)

func importTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Pro Runner":        "pro-runner",
		"  Canvas  Bag!  ":  "canvas-bag",
		"100% Cotton Tee":   "100-cotton-tee",
		"ALLCAPS":           "allcaps",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestImportCSV_FullRow(t *testing.T) {
	db := importTestDB(t)

	csvData := `sku,name,price,special_price,categories,color,size
RUN-1,Pro Runner,100,80,Shoes|Running,red,42
`
	res, err := ImportCSV(db, strings.NewReader(csvData), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.Created != 1 {
		t.Fatalf("created = %d, want 1 (warnings %v)", res.Created, res.Warnings)
	}

	var prod catalogEntity.Product
	if err := db.Preload("Categories").Preload("Attributes").Where("sku = ?", "RUN-1").First(&prod).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if prod.URLKey != "pro-runner" {
		t.Errorf("url_key = %q, want slug from name", prod.URLKey)
	}
	if prod.SpecialPrice == nil || *prod.SpecialPrice != 80 {
		t.Errorf("special_price = %v, want 80", prod.SpecialPrice)
	}
	if len(prod.Categories) != 2 {
		t.Errorf("categories = %d, want 2 (pipe-separated)", len(prod.Categories))
	}
	// Unknown columns become attribute values
	if len(prod.Attributes) != 2 {
		t.Errorf("attributes = %d, want 2 (color, size)", len(prod.Attributes))
	}
}

func TestImportCSV_BadPriceWarns(t *testing.T) {
	db := importTestDB(t)

	csvData := `sku,name,price
BAD-1,Broken,notanumber
`
	res, err := ImportCSV(db, strings.NewReader(csvData), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(res.Warnings) == 0 {
		t.Error("want a warning for the unparseable price")
	}
	if res.Created != 1 {
		t.Errorf("created = %d, want 1 (row still imported at price 0)", res.Created)
	}
}

func TestImportItems_SpecialPriceAbovePriceSkipped(t *testing.T) {
	db := importTestDB(t)

	over := 120.0
	res, err := ImportItems(db, []ProductInput{
		{SKU: "OVR-1", Name: "Overpriced", Price: 100, SpecialPrice: &over},
	}, ImportOptions{})
	if err != nil {
		t.Fatalf("ImportItems: %v", err)
	}
	if res.Skipped != 1 || res.Created != 0 {
		t.Errorf("skipped/created = %d/%d, want 1/0", res.Skipped, res.Created)
	}
}

func TestImportItems_ReimportReplacesLinks(t *testing.T) {
	db := importTestDB(t)

	items := []ProductInput{{SKU: "LNK-1", Name: "Linked", Price: 10, Categories: []string{"Shoes"}, Attributes: map[string]string{"color": "Red"}}}
	if _, err := ImportItems(db, items, ImportOptions{}); err != nil {
		t.Fatalf("first import: %v", err)
	}

	items[0].Categories = []string{"Bags"}
	items[0].Attributes = map[string]string{"color": "blue"}
	if _, err := ImportItems(db, items, ImportOptions{}); err != nil {
		t.Fatalf("second import: %v", err)
	}

	var prod catalogEntity.Product
	if err := db.Preload("Categories").Preload("Attributes").Where("sku = ?", "LNK-1").First(&prod).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(prod.Categories) != 1 {
		t.Fatalf("categories = %d, want 1 (old links replaced)", len(prod.Categories))
	}
	if len(prod.Attributes) != 1 || prod.Attributes[0].Value != "blue" {
		t.Errorf("attributes = %+v, want single lowercased blue", prod.Attributes)
	}
}
