// internal/services/color_service.go
package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/models"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type ColorService struct {
	db      *gorm.DB
	storage *StorageService
}

type ColorRequest struct {
	Name string `json:"name" form:"name" validate:"required,max=255"`
	Hex  string `json:"hex" form:"hex" validate:"required,colorhex"`
}

type AvailableColorRequest struct {
	MotorID uint `json:"motor_id" form:"motor_id" validate:"required"`
	ColorID uint `json:"color_id" form:"color_id" validate:"required"`
}

func NewColorService(db *gorm.DB, storage *StorageService) *ColorService {
	return &ColorService{db: db, storage: storage}
}

func (s *ColorService) ListColors(params utils.PaginationParams) ([]models.Color, int64, error) {
	var total int64
	if err := s.db.Model(&models.Color{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count colors: %w", err)
	}

	var colors []models.Color
	if err := utils.ApplyPagination(s.db, params).Find(&colors).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch colors: %w", err)
	}

	return colors, total, nil
}

func (s *ColorService) GetColor(id uint) (*models.Color, error) {
	var color models.Color
	if err := s.db.First(&color, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("color not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &color, nil
}

func (s *ColorService) CreateColor(req *ColorRequest) (*models.Color, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.Color{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	color := &models.Color{Name: req.Name, Hex: req.Hex}
	if err := s.db.Create(color).Error; err != nil {
		return nil, fmt.Errorf("failed to create color: %w", err)
	}
	return color, nil
}

func (s *ColorService) UpdateColor(id uint, req *ColorRequest) (*models.Color, error) {
	var color models.Color
	if err := s.db.First(&color, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("color not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.Color{}).Where("name = ? AND id <> ?", req.Name, id).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	color.Name = req.Name
	color.Hex = req.Hex
	if err := s.db.Save(&color).Error; err != nil {
		return nil, fmt.Errorf("failed to update color: %w", err)
	}
	return &color, nil
}

func (s *ColorService) DeleteColor(id uint) error {
	var color models.Color
	if err := s.db.First(&color, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("color not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&color).Error; err != nil {
		return fmt.Errorf("failed to delete color: %w", err)
	}
	return nil
}

// Available colors (motor <-> color join with an optional photo).

func (s *ColorService) ListAvailableColors(params utils.PaginationParams) ([]models.AvailableColor, int64, error) {
	var total int64
	if err := s.db.Model(&models.AvailableColor{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count available colors: %w", err)
	}

	var rows []models.AvailableColor
	if err := utils.ApplyPagination(s.db.Preload("Motor").Preload("Color"), params).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch available colors: %w", err)
	}

	return rows, total, nil
}

func (s *ColorService) GetAvailableColor(id uint) (*models.AvailableColor, error) {
	var row models.AvailableColor
	if err := s.db.Preload("Motor").Preload("Color").First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("available color not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &row, nil
}

func (s *ColorService) CreateAvailableColor(req *AvailableColorRequest, image *multipart.FileHeader) (*models.AvailableColor, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	if err := s.checkReferences(req.MotorID, req.ColorID); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.AvailableColor{}).
		Where("motor_id = ? AND color_id = ?", req.MotorID, req.ColorID).
		Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("color_id", "This color is already registered for the motor.")
	}

	row := &models.AvailableColor{
		MotorID: req.MotorID,
		ColorID: req.ColorID,
	}

	if image != nil {
		key, err := s.storage.StoreUpload(image, PrefixColorImages)
		if err != nil {
			return nil, NewValidationFailure("image", err.Error())
		}
		row.Image = &key
	}

	if err := s.db.Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create available color: %w", err)
	}

	s.db.Preload("Motor").Preload("Color").First(row, row.ID)
	return row, nil
}

func (s *ColorService) UpdateAvailableColor(id uint, req *AvailableColorRequest, image *multipart.FileHeader) (*models.AvailableColor, error) {
	var row models.AvailableColor
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("available color not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	if err := s.checkReferences(req.MotorID, req.ColorID); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.AvailableColor{}).
		Where("motor_id = ? AND color_id = ? AND id <> ?", req.MotorID, req.ColorID, id).
		Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("color_id", "This color is already registered for the motor.")
	}

	if image != nil {
		if row.Image != nil {
			_ = s.storage.DeleteFile(*row.Image)
		}
		key, err := s.storage.StoreUpload(image, PrefixColorImages)
		if err != nil {
			return nil, NewValidationFailure("image", err.Error())
		}
		row.Image = &key
	}

	row.MotorID = req.MotorID
	row.ColorID = req.ColorID

	if err := s.db.Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update available color: %w", err)
	}

	s.db.Preload("Motor").Preload("Color").First(&row, row.ID)
	return &row, nil
}

func (s *ColorService) DeleteAvailableColor(id uint) error {
	var row models.AvailableColor
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("available color not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if row.Image != nil {
		_ = s.storage.DeleteFile(*row.Image)
	}

	if err := s.db.Delete(&row).Error; err != nil {
		return fmt.Errorf("failed to delete available color: %w", err)
	}
	return nil
}

func (s *ColorService) checkReferences(motorID, colorID uint) error {
	var count int64
	s.db.Model(&models.Motor{}).Where("id = ?", motorID).Count(&count)
	if count == 0 {
		return NewValidationFailure("motor_id", "The selected motor_id is invalid.")
	}
	s.db.Model(&models.Color{}).Where("id = ?", colorID).Count(&count)
	if count == 0 {
		return NewValidationFailure("color_id", "The selected color_id is invalid.")
	}
	return nil
}
