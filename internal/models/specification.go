// internal/models/specification.go
package models

type SpecificationGroup struct {
	BaseModel
	Name  string `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Order int    `json:"order" gorm:"column:order;default:0"`

	// Relationships
	Items []SpecificationItem `json:"items,omitempty" gorm:"foreignKey:SpecificationGroupID;constraint:OnDelete:CASCADE"`
}

func (SpecificationGroup) TableName() string {
	return "motorinci_specification_groups"
}

type SpecificationItem struct {
	BaseModel
	SpecificationGroupID uint    `json:"specification_group_id" gorm:"not null;index"`
	Name                 string  `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Unit                 *string `json:"unit,omitempty" gorm:"size:255"`
	Desc                 *string `json:"desc,omitempty" gorm:"type:text"`
	Order                int     `json:"order" gorm:"column:order;default:0"`

	// Relationships
	SpecificationGroup *SpecificationGroup `json:"specification_group,omitempty" gorm:"foreignKey:SpecificationGroupID"`
}

func (SpecificationItem) TableName() string {
	return "motorinci_specification_items"
}

// MotorSpecification holds one motor's value for one specification item,
// e.g. "149.16" for the "Engine Displacement" item.
type MotorSpecification struct {
	BaseModel
	MotorID             uint   `json:"motor_id" gorm:"not null;uniqueIndex:idx_motor_spec"`
	SpecificationItemID uint   `json:"specification_item_id" gorm:"not null;uniqueIndex:idx_motor_spec"`
	Value               string `json:"value" gorm:"size:255;not null"`

	// Relationships
	Motor             *Motor             `json:"motor,omitempty" gorm:"foreignKey:MotorID"`
	SpecificationItem *SpecificationItem `json:"specification_item,omitempty" gorm:"foreignKey:SpecificationItemID"`
}

func (MotorSpecification) TableName() string {
	return "motorinci_motor_specifications"
}
