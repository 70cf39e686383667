// internal/models/feature.go
package models

type FeatureItem struct {
	BaseModel
	Name string  `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Desc *string `json:"desc,omitempty" gorm:"type:text"`
	Icon *string `json:"icon,omitempty" gorm:"size:255"`
}

func (FeatureItem) TableName() string {
	return "motorinci_feature_items"
}

type MotorFeature struct {
	BaseModel
	MotorID       uint `json:"motor_id" gorm:"not null;uniqueIndex:idx_motor_feature"`
	FeatureItemID uint `json:"feature_item_id" gorm:"not null;uniqueIndex:idx_motor_feature"`

	// Relationships
	Motor       *Motor       `json:"motor,omitempty" gorm:"foreignKey:MotorID"`
	FeatureItem *FeatureItem `json:"feature_item,omitempty" gorm:"foreignKey:FeatureItemID"`
}

func (MotorFeature) TableName() string {
	return "motorinci_motor_feature"
}
