package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	catalogEntity "shopsearch.GO/model/entity/catalog"
	searchService "shopsearch.GO/service/search"
)

// CatalogRepository is the read side of the product catalog. It translates
// query plans into SQL; every statement is portable across MySQL and the
// in-memory SQLite used by tests.
type CatalogRepository struct {
	db *gorm.DB
}

var (
	catalogRepoInstances sync.Map // *gorm.DB -> *CatalogRepository
)

// GetCatalogRepository returns a singleton repository per DB handle.
func GetCatalogRepository(db *gorm.DB) *CatalogRepository {
	if v, ok := catalogRepoInstances.Load(db); ok {
		return v.(*CatalogRepository)
	}
	repo := NewCatalogRepository(db)
	actual, _ := catalogRepoInstances.LoadOrStore(db, repo)
	return actual.(*CatalogRepository)
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

var _ searchService.CatalogStore = (*CatalogRepository)(nil)

// escapeLike escapes LIKE wildcards with '!', the one escape char both MySQL
// and SQLite accept verbatim.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "!", "!!")
	s = strings.ReplaceAll(s, "%", "!%")
	return strings.ReplaceAll(s, "_", "!_")
}

// buildWhere renders a plan as SQL conditions over catalog_product alias p.
// Attribute constraints are ANDed across attributes and ORed (IN) within one.
func buildWhere(plan searchService.Plan) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if plan.KeywordIDs != nil {
		if len(plan.KeywordIDs) == 0 {
			conds = append(conds, "1 = 0")
		} else {
			conds = append(conds, "p.entity_id IN ?")
			args = append(args, plan.KeywordIDs)
		}
	} else if plan.Keyword != "" {
		pat := "%" + escapeLike(plan.Keyword) + "%"
		conds = append(conds, "(LOWER(p.name) LIKE ? ESCAPE '!' OR LOWER(p.description) LIKE ? ESCAPE '!')")
		args = append(args, pat, pat)
	}

	if plan.CategoryID != nil {
		conds = append(conds, "p.entity_id IN (SELECT product_id FROM catalog_category_product WHERE category_id = ?)")
		args = append(args, *plan.CategoryID)
	}

	if plan.MinPrice != nil {
		conds = append(conds, "COALESCE(p.special_price, p.price) >= ?")
		args = append(args, *plan.MinPrice)
	}
	if plan.MaxPrice != nil {
		conds = append(conds, "COALESCE(p.special_price, p.price) <= ?")
		args = append(args, *plan.MaxPrice)
	}

	for _, code := range plan.AttributeCodes() {
		conds = append(conds, `p.entity_id IN (
			SELECT pa.product_id FROM catalog_product_attribute pa
			JOIN catalog_attribute a ON a.attribute_id = pa.attribute_id
			WHERE a.code = ? AND pa.value IN ?)`)
		args = append(args, code, plan.Attributes[code])
	}

	if len(conds) == 0 {
		return "1 = 1", nil
	}
	return strings.Join(conds, " AND "), args
}

// orderSQL renders the total order for a page. The entity_id tie-break is
// always ascending so page boundaries do not move between asc and desc.
func orderSQL(s searchService.SortSpec) (string, []interface{}) {
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	switch s.Key {
	case searchService.SortPrice:
		return "COALESCE(p.special_price, p.price) " + dir + ", p.entity_id ASC", nil
	case searchService.SortName:
		return "LOWER(p.name) " + dir + ", p.entity_id ASC", nil
	case searchService.SortPopularity:
		return "p.popularity " + dir + ", p.entity_id ASC", nil
	case searchService.SortRelevance:
		if s.Keyword != "" {
			prefix := escapeLike(s.Keyword) + "%"
			contains := "%" + escapeLike(s.Keyword) + "%"
			return "(CASE WHEN LOWER(p.name) LIKE ? ESCAPE '!' THEN 3 WHEN LOWER(p.name) LIKE ? ESCAPE '!' THEN 2 ELSE 1 END) " +
				dir + ", p.created_at DESC, p.entity_id ASC", []interface{}{prefix, contains}
		}
		fallthrough
	default: // newest
		return "p.created_at " + dir + ", p.entity_id ASC", nil
	}
}

func (r *CatalogRepository) QueryProducts(ctx context.Context, plan searchService.Plan, sortSpec searchService.SortSpec, offset, limit int) ([]catalogEntity.Product, error) {
	where, args := buildWhere(plan)
	order, orderArgs := orderSQL(sortSpec)
	query := fmt.Sprintf("SELECT p.* FROM catalog_product p WHERE %s ORDER BY %s LIMIT ? OFFSET ?", where, order)
	args = append(args, orderArgs...)
	args = append(args, limit, offset)

	var products []catalogEntity.Product
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogRepository) CountProducts(ctx context.Context, plan searchService.Plan) (int64, error) {
	where, args := buildWhere(plan)
	var total int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM catalog_product p WHERE "+where, args...).
		Scan(&total).Error
	return total, err
}

func (r *CatalogRepository) CountByCategory(ctx context.Context, plan searchService.Plan) ([]searchService.CategoryCount, error) {
	where, args := buildWhere(plan)
	query := `
		SELECT c.entity_id, c.name, c.url_key, COUNT(DISTINCT cp.product_id) AS cnt
		FROM catalog_category c
		JOIN catalog_category_product cp ON cp.category_id = c.entity_id
		JOIN catalog_product p ON p.entity_id = cp.product_id
		WHERE c.is_active = 1 AND ` + where + `
		GROUP BY c.entity_id, c.name, c.url_key
		ORDER BY cnt DESC, c.name ASC`
	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []searchService.CategoryCount
	for rows.Next() {
		var cc searchService.CategoryCount
		if err := rows.Scan(&cc.CategoryID, &cc.Name, &cc.URLKey, &cc.Count); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) CountByAttribute(ctx context.Context, plan searchService.Plan, code string) ([]searchService.ValueCount, error) {
	where, args := buildWhere(plan)
	query := `
		SELECT pa.value, COUNT(DISTINCT pa.product_id) AS cnt
		FROM catalog_product_attribute pa
		JOIN catalog_attribute a ON a.attribute_id = pa.attribute_id
		JOIN catalog_product p ON p.entity_id = pa.product_id
		WHERE a.code = ? AND ` + where + `
		GROUP BY pa.value
		ORDER BY cnt DESC, pa.value ASC`
	rows, err := r.db.WithContext(ctx).Raw(query, append([]interface{}{code}, args...)...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []searchService.ValueCount
	for rows.Next() {
		var vc searchService.ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			return nil, err
		}
		out = append(out, vc)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) PriceRange(ctx context.Context, plan searchService.Plan) (float64, float64, bool, error) {
	where, args := buildWhere(plan)
	query := "SELECT MIN(COALESCE(p.special_price, p.price)), MAX(COALESCE(p.special_price, p.price)) FROM catalog_product p WHERE " + where
	row := r.db.WithContext(ctx).Raw(query, args...).Row()

	var min, max sql.NullFloat64
	if err := row.Scan(&min, &max); err != nil {
		return 0, 0, false, err
	}
	if !min.Valid || !max.Valid {
		return 0, 0, false, nil
	}
	return min.Float64, max.Float64, true, nil
}

func (r *CatalogRepository) SuggestProducts(ctx context.Context, term string, limit int) ([]searchService.SuggestionRow, error) {
	prefix := escapeLike(term) + "%"
	contains := "%" + escapeLike(term) + "%"
	query := `
		SELECT p.name, p.url_key, p.popularity,
			CASE WHEN LOWER(p.name) LIKE ? ESCAPE '!' THEN 1 ELSE 0 END AS prefix
		FROM catalog_product p
		WHERE LOWER(p.name) LIKE ? ESCAPE '!'
		ORDER BY prefix DESC, p.popularity DESC, LOWER(p.name) ASC
		LIMIT ?`
	return r.scanSuggestions(ctx, query, prefix, contains, limit)
}

func (r *CatalogRepository) SuggestCategories(ctx context.Context, term string, limit int) ([]searchService.SuggestionRow, error) {
	prefix := escapeLike(term) + "%"
	contains := "%" + escapeLike(term) + "%"
	query := `
		SELECT c.name, c.url_key, 0 AS popularity,
			CASE WHEN LOWER(c.name) LIKE ? ESCAPE '!' THEN 1 ELSE 0 END AS prefix
		FROM catalog_category c
		WHERE c.is_active = 1 AND LOWER(c.name) LIKE ? ESCAPE '!'
		ORDER BY prefix DESC, LOWER(c.name) ASC
		LIMIT ?`
	return r.scanSuggestions(ctx, query, prefix, contains, limit)
}

func (r *CatalogRepository) scanSuggestions(ctx context.Context, query string, prefix, contains string, limit int) ([]searchService.SuggestionRow, error) {
	rows, err := r.db.WithContext(ctx).Raw(query, prefix, contains, limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []searchService.SuggestionRow
	for rows.Next() {
		var row searchService.SuggestionRow
		var isPrefix int
		if err := rows.Scan(&row.Name, &row.URLKey, &row.Popularity, &isPrefix); err != nil {
			return nil, err
		}
		row.Prefix = isPrefix == 1
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) ListAttributes(ctx context.Context) ([]catalogEntity.Attribute, error) {
	var attrs []catalogEntity.Attribute
	err := r.db.WithContext(ctx).
		Where("filterable = ?", 1).
		Order("position ASC, code ASC").
		Find(&attrs).Error
	return attrs, err
}

// ListCategories returns active categories ordered by position (HTML sidebar,
// cache warmup).
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]catalogEntity.Category, error) {
	var cats []catalogEntity.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", 1).
		Order("position ASC, name ASC").
		Find(&cats).Error
	return cats, err
}
