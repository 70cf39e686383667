// internal/services/feature_service.go
package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/models"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type FeatureService struct {
	db      *gorm.DB
	storage *StorageService
}

type FeatureItemRequest struct {
	Name string  `json:"name" form:"name" validate:"required,max=255"`
	Desc *string `json:"desc,omitempty" form:"desc"`
}

type MotorFeatureRequest struct {
	MotorID       uint `json:"motor_id" form:"motor_id" validate:"required"`
	FeatureItemID uint `json:"feature_item_id" form:"feature_item_id" validate:"required"`
}

func NewFeatureService(db *gorm.DB, storage *StorageService) *FeatureService {
	return &FeatureService{db: db, storage: storage}
}

func (s *FeatureService) ListFeatureItems(params utils.PaginationParams) ([]models.FeatureItem, int64, error) {
	var total int64
	if err := s.db.Model(&models.FeatureItem{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feature items: %w", err)
	}

	var items []models.FeatureItem
	if err := utils.ApplyPagination(s.db, params).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch feature items: %w", err)
	}

	return items, total, nil
}

func (s *FeatureService) GetFeatureItem(id uint) (*models.FeatureItem, error) {
	var item models.FeatureItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("feature item not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

func (s *FeatureService) CreateFeatureItem(req *FeatureItemRequest, icon *multipart.FileHeader) (*models.FeatureItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.FeatureItem{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	item := &models.FeatureItem{
		Name: req.Name,
		Desc: req.Desc,
	}

	if icon != nil {
		key, err := s.storage.StoreUpload(icon, PrefixFeatureIcons)
		if err != nil {
			return nil, NewValidationFailure("icon", err.Error())
		}
		item.Icon = &key
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create feature item: %w", err)
	}

	return item, nil
}

func (s *FeatureService) UpdateFeatureItem(id uint, req *FeatureItemRequest, icon *multipart.FileHeader) (*models.FeatureItem, error) {
	var item models.FeatureItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("feature item not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.FeatureItem{}).Where("name = ? AND id <> ?", req.Name, id).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	if icon != nil {
		if item.Icon != nil {
			_ = s.storage.DeleteFile(*item.Icon)
		}
		key, err := s.storage.StoreUpload(icon, PrefixFeatureIcons)
		if err != nil {
			return nil, NewValidationFailure("icon", err.Error())
		}
		item.Icon = &key
	}

	item.Name = req.Name
	item.Desc = req.Desc

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update feature item: %w", err)
	}

	return &item, nil
}

func (s *FeatureService) DeleteFeatureItem(id uint) error {
	var item models.FeatureItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("feature item not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if item.Icon != nil {
		_ = s.storage.DeleteFile(*item.Icon)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("failed to delete feature item: %w", err)
	}
	return nil
}

// Motor features (motor <-> feature item join).

func (s *FeatureService) ListMotorFeatures(params utils.PaginationParams) ([]models.MotorFeature, int64, error) {
	var total int64
	if err := s.db.Model(&models.MotorFeature{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count motor features: %w", err)
	}

	var rows []models.MotorFeature
	if err := utils.ApplyPagination(s.db.Preload("Motor").Preload("FeatureItem"), params).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch motor features: %w", err)
	}

	return rows, total, nil
}

func (s *FeatureService) GetMotorFeature(id uint) (*models.MotorFeature, error) {
	var row models.MotorFeature
	if err := s.db.Preload("Motor").Preload("FeatureItem").First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("motor feature not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &row, nil
}

func (s *FeatureService) CreateMotorFeature(req *MotorFeatureRequest) (*models.MotorFeature, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	if err := s.checkReferences(req.MotorID, req.FeatureItemID); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.MotorFeature{}).
		Where("motor_id = ? AND feature_item_id = ?", req.MotorID, req.FeatureItemID).
		Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("feature_item_id", "This feature is already registered for the motor.")
	}

	row := &models.MotorFeature{
		MotorID:       req.MotorID,
		FeatureItemID: req.FeatureItemID,
	}

	if err := s.db.Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create motor feature: %w", err)
	}

	s.db.Preload("Motor").Preload("FeatureItem").First(row, row.ID)
	return row, nil
}

func (s *FeatureService) UpdateMotorFeature(id uint, req *MotorFeatureRequest) (*models.MotorFeature, error) {
	var row models.MotorFeature
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("motor feature not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	if err := s.checkReferences(req.MotorID, req.FeatureItemID); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.MotorFeature{}).
		Where("motor_id = ? AND feature_item_id = ? AND id <> ?", req.MotorID, req.FeatureItemID, id).
		Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("feature_item_id", "This feature is already registered for the motor.")
	}

	row.MotorID = req.MotorID
	row.FeatureItemID = req.FeatureItemID

	if err := s.db.Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update motor feature: %w", err)
	}

	s.db.Preload("Motor").Preload("FeatureItem").First(&row, row.ID)
	return &row, nil
}

func (s *FeatureService) DeleteMotorFeature(id uint) error {
	var row models.MotorFeature
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("motor feature not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&row).Error; err != nil {
		return fmt.Errorf("failed to delete motor feature: %w", err)
	}
	return nil
}

func (s *FeatureService) checkReferences(motorID, featureItemID uint) error {
	var count int64
	s.db.Model(&models.Motor{}).Where("id = ?", motorID).Count(&count)
	if count == 0 {
		return NewValidationFailure("motor_id", "The selected motor_id is invalid.")
	}
	s.db.Model(&models.FeatureItem{}).Where("id = ?", featureItemID).Count(&count)
	if count == 0 {
		return NewValidationFailure("feature_item_id", "The selected feature_item_id is invalid.")
	}
	return nil
}
