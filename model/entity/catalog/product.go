package catalog

import (
	"time"

	"gorm.io/datatypes"
)

// Product represents catalog_product table
type Product struct {
	EntityID     uint           `gorm:"column:entity_id;primaryKey;autoIncrement" json:"entity_id"`
	SKU          string         `gorm:"column:sku;type:varchar(64);not null;uniqueIndex" json:"sku"`
	Name         string         `gorm:"column:name;type:varchar(255);not null;index" json:"name"`
	URLKey       string         `gorm:"column:url_key;type:varchar(255);not null;uniqueIndex" json:"url_key"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	Price        float64        `gorm:"column:price;type:decimal(20,6);not null;default:0" json:"price"`
	SpecialPrice *float64       `gorm:"column:special_price;type:decimal(20,6)" json:"special_price,omitempty"`
	Image        string         `gorm:"column:image;type:varchar(255)" json:"image,omitempty"`
	Gallery      datatypes.JSON `gorm:"column:gallery" json:"gallery,omitempty"`
	Popularity   int64          `gorm:"column:popularity;not null;default:0;index" json:"popularity"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Categories []CategoryProduct  `gorm:"foreignKey:ProductID;references:EntityID" json:"categories,omitempty"`
	Attributes []ProductAttribute `gorm:"foreignKey:ProductID;references:EntityID" json:"attributes,omitempty"`
}

func (Product) TableName() string {
	return "catalog_product"
}

// EffectivePrice returns special_price when set, price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.SpecialPrice != nil {
		return *p.SpecialPrice
	}
	return p.Price
}
