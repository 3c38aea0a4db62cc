package search

import "time"

// PopularTerm represents search_popular_term table: hourly snapshot of the
// most searched keywords, so popularity survives a restart
type PopularTerm struct {
	TermID   uint      `gorm:"column:term_id;primaryKey;autoIncrement" json:"term_id,omitempty"`
	Term     string    `gorm:"column:term;type:varchar(255);not null;uniqueIndex" json:"term"`
	Count    int64     `gorm:"column:count;not null;default:0" json:"count"`
	LastSeen time.Time `gorm:"column:last_seen;not null" json:"last_seen"`
}

func (PopularTerm) TableName() string {
	return "search_popular_term"
}
