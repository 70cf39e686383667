// internal/models/motor.go
package models

import "time"

type Motor struct {
	BaseModel
	Name         string  `json:"name" gorm:"size:255;not null;index"`
	BrandID      uint    `json:"brand_id" gorm:"not null;index"`
	CategoryID   uint    `json:"category_id" gorm:"not null;index"`
	YearModel    int     `json:"year_model" gorm:"not null"`
	EngineCC     int     `json:"engine_cc" gorm:"column:engine_cc;not null"`
	LowPrice     *uint64 `json:"low_price,omitempty"`
	UpPrice      *uint64 `json:"up_price,omitempty"`
	Desc         *string `json:"desc,omitempty" gorm:"type:text"`
	BrochureURL  *string `json:"brochure_url,omitempty" gorm:"size:255"`
	SparepartURL *string `json:"sparepart_url,omitempty" gorm:"size:255"`
	// IsActive has no column default so a false value survives inserts;
	// services set it explicitly.
	IsActive           bool       `json:"is_active"`
	IsFeatured         bool       `json:"is_featured"`
	PublishedAt        *time.Time `json:"published_at,omitempty"`
	ImageFetchFailedAt *time.Time `json:"image_fetch_failed_at,omitempty"`

	// Relationships
	Brand           *Brand               `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Category        *Category            `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	AvailableColors []AvailableColor     `json:"available_colors,omitempty" gorm:"foreignKey:MotorID;constraint:OnDelete:CASCADE"`
	Features        []MotorFeature       `json:"features,omitempty" gorm:"foreignKey:MotorID;constraint:OnDelete:CASCADE"`
	Specifications  []MotorSpecification `json:"specifications,omitempty" gorm:"foreignKey:MotorID;constraint:OnDelete:CASCADE"`
	Images          []MotorImage         `json:"images,omitempty" gorm:"foreignKey:MotorID;constraint:OnDelete:CASCADE"`
	Reviews         []Review             `json:"reviews,omitempty" gorm:"foreignKey:MotorID;constraint:OnDelete:CASCADE"`
}

func (Motor) TableName() string {
	return "motorinci_motors"
}

type MotorImage struct {
	BaseModel
	MotorID uint    `json:"motor_id" gorm:"not null;index"`
	Image   string  `json:"image" gorm:"size:255;not null"`
	Desc    *string `json:"desc,omitempty" gorm:"type:text"`
	Order   int     `json:"order" gorm:"column:order;default:0"`

	// Relationships
	Motor *Motor `json:"motor,omitempty" gorm:"foreignKey:MotorID"`
}

func (MotorImage) TableName() string {
	return "motorinci_motor_images"
}

type Review struct {
	BaseModel
	MotorID       uint    `json:"motor_id" gorm:"not null;index"`
	ReviewerName  string  `json:"reviewer_name" gorm:"size:255;not null"`
	ReviewerEmail string  `json:"reviewer_email" gorm:"size:255;not null"`
	Rating        int     `json:"rating" gorm:"not null"`
	Comment       *string `json:"comment,omitempty" gorm:"type:text"`
	IsApproved    bool    `json:"is_approved"`

	// Relationships
	Motor *Motor `json:"motor,omitempty" gorm:"foreignKey:MotorID"`
}

func (Review) TableName() string {
	return "motorinci_reviews"
}
