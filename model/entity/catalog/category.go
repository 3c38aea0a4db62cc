package catalog

// Category represents catalog_category table
type Category struct {
	EntityID uint   `gorm:"column:entity_id;primaryKey;autoIncrement" json:"entity_id"`
	Name     string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	URLKey   string `gorm:"column:url_key;type:varchar(255);not null;uniqueIndex" json:"url_key"`
	Position int    `gorm:"column:position;not null;default:0" json:"position"`
	IsActive uint8  `gorm:"column:is_active;type:smallint unsigned;not null;default:1" json:"is_active"`
}

func (Category) TableName() string {
	return "catalog_category"
}

// CategoryProduct represents catalog_category_product link table
type CategoryProduct struct {
	CategoryID uint `gorm:"column:category_id;primaryKey;autoIncrement:false;index" json:"category_id"`
	ProductID  uint `gorm:"column:product_id;primaryKey;autoIncrement:false;index" json:"product_id"`
	Position   int  `gorm:"column:position;not null;default:0" json:"position"`
}

func (CategoryProduct) TableName() string {
	return "catalog_category_product"
}
