// internal/models/color.go
package models

type Color struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Hex  string `json:"hex" gorm:"size:7;not null"`
}

func (Color) TableName() string {
	return "motorinci_colors"
}

// AvailableColor links a motor to a color it ships in, optionally with a
// photo of the motor in that color.
type AvailableColor struct {
	BaseModel
	MotorID uint    `json:"motor_id" gorm:"not null;uniqueIndex:idx_motor_color"`
	ColorID uint    `json:"color_id" gorm:"not null;uniqueIndex:idx_motor_color"`
	Image   *string `json:"image,omitempty" gorm:"size:255"`

	// Relationships
	Motor *Motor `json:"motor,omitempty" gorm:"foreignKey:MotorID"`
	Color *Color `json:"color,omitempty" gorm:"foreignKey:ColorID"`
}

func (AvailableColor) TableName() string {
	return "motorinci_available_colors"
}
