package db_models

// Group is one listed community group. Optional columns are pointers so that
// NULL stays distinguishable from an empty string.
type Group struct {
	GroupID     uint    `gorm:"column:group_id;primaryKey"`
	Name        string  `gorm:"column:name;size:75"`
	Description *string `gorm:"column:description"`
	Website     *string `gorm:"column:website;size:255"`
	Phone       *string `gorm:"column:phone;size:50"`
	Email       *string `gorm:"column:email;size:100"`
	Address     *string `gorm:"column:address"`
	Area        string  `gorm:"column:area;size:100"`
	AgeGroup    string  `gorm:"column:age_group;size:50"`

	// CategoryID may be NULL or reference no row.
	CategoryID *uint     `gorm:"column:category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;references:CategoryID"`
}

func (Group) TableName() string {
	return "groups"
}
