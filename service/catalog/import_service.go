package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopsearch.GO/core/cache"
	catalogEntity "shopsearch.GO/model/entity/catalog"
	searchEntity "shopsearch.GO/model/entity/search"
	searchService "shopsearch.GO/service/search"
)

// ImportOptions configures a catalog import run.
type ImportOptions struct {
	BatchSize int
	MediaDir  string // when set, thumbnails are generated next to the originals
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows  int
	Created    int
	Updated    int
	Skipped    int
	Warnings   []string
	Thumbnails int
	TotalTime  time.Duration
}

// ProductInput is one product row, either from a CSV line or the JSON import API.
// Attributes maps attribute code to comma-separated values; Categories holds
// pipe-separated category names in CSV.
type ProductInput struct {
	SKU          string            `json:"sku"`
	Name         string            `json:"name"`
	URLKey       string            `json:"url_key"`
	Description  string            `json:"description"`
	Price        float64           `json:"price"`
	SpecialPrice *float64          `json:"special_price"`
	Image        string            `json:"image"`
	Popularity   int64             `json:"popularity"`
	Categories   []string          `json:"categories"`
	Attributes   map[string]string `json:"attributes"`
}

// staticColumns are CSV headers handled directly; everything else is treated
// as an attribute code.
var staticColumns = map[string]bool{
	"sku": true, "name": true, "url_key": true, "description": true,
	"price": true, "special_price": true, "image": true, "popularity": true,
	"categories": true,
}

// ImportCSV reads CSV data from r and upserts products into the catalog tables.
func ImportCSV(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var items []ProductInput
	var warnings []string
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		item := ProductInput{Attributes: make(map[string]string)}
		for i, col := range header {
			if i >= len(record) {
				break
			}
			val := strings.TrimSpace(record[i])
			switch col {
			case "sku":
				item.SKU = val
			case "name":
				item.Name = val
			case "url_key":
				item.URLKey = val
			case "description":
				item.Description = val
			case "price":
				if val != "" {
					if f, err := strconv.ParseFloat(val, 64); err == nil {
						item.Price = f
					} else {
						warnings = append(warnings, fmt.Sprintf("line %d: bad price %q", line, val))
					}
				}
			case "special_price":
				if val != "" {
					if f, err := strconv.ParseFloat(val, 64); err == nil {
						item.SpecialPrice = &f
					} else {
						warnings = append(warnings, fmt.Sprintf("line %d: bad special_price %q", line, val))
					}
				}
			case "image":
				item.Image = val
			case "popularity":
				if val != "" {
					if n, err := strconv.ParseInt(val, 10, 64); err == nil {
						item.Popularity = n
					}
				}
			case "categories":
				for _, c := range strings.Split(val, "|") {
					if c = strings.TrimSpace(c); c != "" {
						item.Categories = append(item.Categories, c)
					}
				}
			default:
				if val != "" && !staticColumns[col] {
					item.Attributes[col] = val
				}
			}
		}
		items = append(items, item)
	}

	res, err := ImportItems(db, items, opts)
	if res != nil {
		res.Warnings = append(warnings, res.Warnings...)
	}
	return res, err
}

// ImportItems upserts product rows with their categories and attribute values.
// Used by the JSON import API and by ImportCSV.
func ImportItems(db *gorm.DB, items []ProductInput, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}

	res := &ImportResult{TotalRows: len(items)}
	for _, item := range items {
		if item.SKU == "" || item.Name == "" {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipped row without sku/name (sku=%q)", item.SKU))
			continue
		}
		if item.SpecialPrice != nil && *item.SpecialPrice > item.Price {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: special_price above price", item.SKU))
			continue
		}
		if err := importOne(db, item, res); err != nil {
			return res, fmt.Errorf("import %s: %w", item.SKU, err)
		}
	}

	if opts.MediaDir != "" {
		res.Thumbnails = generateThumbnails(opts.MediaDir, items, res)
	}

	// Attribute set may have changed; drop cached metadata
	cache.GetInstance().DeleteByTag(searchService.CacheTagAttributes)

	res.TotalTime = time.Since(start)
	return res, nil
}

func importOne(db *gorm.DB, item ProductInput, res *ImportResult) error {
	return db.Transaction(func(tx *gorm.DB) error {
		product := catalogEntity.Product{
			SKU:          item.SKU,
			Name:         item.Name,
			URLKey:       item.URLKey,
			Description:  item.Description,
			Price:        item.Price,
			SpecialPrice: item.SpecialPrice,
			Image:        item.Image,
			Popularity:   item.Popularity,
		}
		if product.URLKey == "" {
			product.URLKey = Slugify(item.Name)
		}

		var existing catalogEntity.Product
		err := tx.Where("sku = ?", item.SKU).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			res.Created++
		case err != nil:
			return err
		default:
			product.EntityID = existing.EntityID
			product.CreatedAt = existing.CreatedAt
			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"name": product.Name, "url_key": product.URLKey,
				"description": product.Description, "price": product.Price,
				"special_price": product.SpecialPrice, "image": product.Image,
				"popularity": product.Popularity,
			}).Error; err != nil {
				return err
			}
			res.Updated++
		}

		if err := linkCategories(tx, product.EntityID, item.Categories); err != nil {
			return err
		}
		return setAttributeValues(tx, product.EntityID, item.Attributes)
	})
}

func linkCategories(tx *gorm.DB, productID uint, names []string) error {
	if names == nil {
		return nil
	}
	if err := tx.Where("product_id = ?", productID).Delete(&catalogEntity.CategoryProduct{}).Error; err != nil {
		return err
	}
	for pos, name := range names {
		cat := catalogEntity.Category{Name: name, URLKey: Slugify(name), IsActive: 1}
		if err := tx.Where("url_key = ?", cat.URLKey).FirstOrCreate(&cat).Error; err != nil {
			return err
		}
		link := catalogEntity.CategoryProduct{CategoryID: cat.EntityID, ProductID: productID, Position: pos}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func setAttributeValues(tx *gorm.DB, productID uint, attrs map[string]string) error {
	if attrs == nil {
		return nil
	}
	if err := tx.Where("product_id = ?", productID).Delete(&catalogEntity.ProductAttribute{}).Error; err != nil {
		return err
	}
	for code, raw := range attrs {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		attr := catalogEntity.Attribute{Code: code, Label: labelFor(code), Filterable: 1}
		if err := tx.Where("code = ?", code).FirstOrCreate(&attr).Error; err != nil {
			return err
		}
		for _, v := range strings.Split(raw, ",") {
			v = strings.ToLower(strings.TrimSpace(v))
			if v == "" {
				continue
			}
			pa := catalogEntity.ProductAttribute{ProductID: productID, AttributeID: attr.AttributeID, Value: v}
			if err := tx.Create(&pa).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// labelFor derives a display label from an attribute code ("shoe_size" ->
// "Shoe Size").
func labelFor(code string) string {
	words := strings.FieldsFunc(code, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Slugify turns a display name into a URL key.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Migrate creates the catalog and search tables (used by tests and the demo
// seed command; production schema is managed externally).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogEntity.Category{},
		&catalogEntity.CategoryProduct{},
		&catalogEntity.Product{},
		&catalogEntity.Attribute{},
		&catalogEntity.ProductAttribute{},
		&searchEntity.PopularTerm{},
	)
}
