package search

import (
	"context"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	searchEntity "shopsearch.GO/model/entity/search"
)

// PopularTermRepository persists popular-search snapshots so the ranked view
// survives a restart.
type PopularTermRepository struct {
	db *gorm.DB
}

var popularRepoInstances sync.Map // *gorm.DB -> *PopularTermRepository

func GetPopularTermRepository(db *gorm.DB) *PopularTermRepository {
	if v, ok := popularRepoInstances.Load(db); ok {
		return v.(*PopularTermRepository)
	}
	repo := NewPopularTermRepository(db)
	actual, _ := popularRepoInstances.LoadOrStore(db, repo)
	return actual.(*PopularTermRepository)
}

func NewPopularTermRepository(db *gorm.DB) *PopularTermRepository {
	return &PopularTermRepository{db: db}
}

// UpsertTerms writes a snapshot, replacing count and last_seen per term.
func (r *PopularTermRepository) UpsertTerms(ctx context.Context, terms []searchEntity.PopularTerm) error {
	if len(terms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "term"}},
		DoUpdates: clause.AssignmentColumns([]string{"count", "last_seen"}),
	}).Create(&terms).Error
}

// Load returns the persisted top terms, count desc, most recent first.
func (r *PopularTermRepository) Load(ctx context.Context, limit int) ([]searchEntity.PopularTerm, error) {
	var terms []searchEntity.PopularTerm
	err := r.db.WithContext(ctx).
		Order("count DESC, last_seen DESC").
		Limit(limit).
		Find(&terms).Error
	return terms, err
}
