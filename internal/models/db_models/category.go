package db_models

// Category is reference data maintained outside this service.
type Category struct {
	CategoryID uint   `gorm:"column:category_id;primaryKey"`
	Category   string `gorm:"column:category;not null"`
}

func (Category) TableName() string {
	return "categories"
}
