// internal/models/brand.go
package models

type Brand struct {
	BaseModel
	Name  string  `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Desc  *string `json:"desc,omitempty" gorm:"type:text"`
	Icon  *string `json:"icon,omitempty" gorm:"size:255"`
	Image *string `json:"image,omitempty" gorm:"size:255"`

	// Relationships
	Motors []Motor `json:"motors,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
}

func (Brand) TableName() string {
	return "motorinci_brands"
}

type Category struct {
	BaseModel
	Name  string  `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Desc  *string `json:"desc,omitempty" gorm:"type:text"`
	Image *string `json:"image,omitempty" gorm:"size:255"`

	// Relationships
	Motors []Motor `json:"motors,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string {
	return "motorinci_categories"
}
