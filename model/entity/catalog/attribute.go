package catalog

// Attribute represents catalog_attribute table (filterable product dimensions
// like color or size)
type Attribute struct {
	AttributeID uint   `gorm:"column:attribute_id;primaryKey;autoIncrement" json:"attribute_id"`
	Code        string `gorm:"column:code;type:varchar(64);not null;uniqueIndex" json:"code"`
	Label       string `gorm:"column:label;type:varchar(255);not null" json:"label"`
	Filterable  uint8  `gorm:"column:filterable;type:smallint unsigned;not null;default:1" json:"filterable"`
	Position    int    `gorm:"column:position;not null;default:0" json:"position"`
}

func (Attribute) TableName() string {
	return "catalog_attribute"
}

// ProductAttribute represents catalog_product_attribute table: one row per
// (product, attribute, value) association
type ProductAttribute struct {
	ValueID     uint   `gorm:"column:value_id;primaryKey;autoIncrement" json:"value_id,omitempty"`
	ProductID   uint   `gorm:"column:product_id;not null;index:idx_product_attribute" json:"product_id"`
	AttributeID uint   `gorm:"column:attribute_id;not null;index:idx_product_attribute;index:idx_attribute_value" json:"attribute_id"`
	Value       string `gorm:"column:value;type:varchar(255);not null;index:idx_attribute_value" json:"value"`
}

func (ProductAttribute) TableName() string {
	return "catalog_product_attribute"
}
