// internal/services/motor_image_service.go
package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/models"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type MotorImageService struct {
	db      *gorm.DB
	storage *StorageService
}

type MotorImageRequest struct {
	MotorID uint    `json:"motor_id" form:"motor_id" validate:"required"`
	Desc    *string `json:"desc,omitempty" form:"desc"`
	Order   int     `json:"order" form:"order"`
}

func NewMotorImageService(db *gorm.DB, storage *StorageService) *MotorImageService {
	return &MotorImageService{db: db, storage: storage}
}

func (s *MotorImageService) ListMotorImages(params utils.PaginationParams) ([]models.MotorImage, int64, error) {
	var total int64
	if err := s.db.Model(&models.MotorImage{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count motor images: %w", err)
	}

	var images []models.MotorImage
	query := s.db.Preload("Motor").Order("\"order\" ASC")
	if err := utils.ApplyPagination(query, params).Find(&images).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch motor images: %w", err)
	}

	return images, total, nil
}

func (s *MotorImageService) GetMotorImage(id uint) (*models.MotorImage, error) {
	var image models.MotorImage
	if err := s.db.Preload("Motor").First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("motor image not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &image, nil
}

func (s *MotorImageService) CreateMotorImage(req *MotorImageRequest, file *multipart.FileHeader) (*models.MotorImage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	if file == nil {
		return nil, NewValidationFailure("image", "The image field is required.")
	}

	var count int64
	s.db.Model(&models.Motor{}).Where("id = ?", req.MotorID).Count(&count)
	if count == 0 {
		return nil, NewValidationFailure("motor_id", "The selected motor_id is invalid.")
	}

	key, err := s.storage.StoreUpload(file, PrefixMotorGallery)
	if err != nil {
		return nil, NewValidationFailure("image", err.Error())
	}

	image := &models.MotorImage{
		MotorID: req.MotorID,
		Image:   key,
		Desc:    req.Desc,
		Order:   req.Order,
	}

	if err := s.db.Create(image).Error; err != nil {
		return nil, fmt.Errorf("failed to create motor image: %w", err)
	}

	s.db.Preload("Motor").First(image, image.ID)
	return image, nil
}

func (s *MotorImageService) UpdateMotorImage(id uint, req *MotorImageRequest, file *multipart.FileHeader) (*models.MotorImage, error) {
	var image models.MotorImage
	if err := s.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("motor image not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.Motor{}).Where("id = ?", req.MotorID).Count(&count)
	if count == 0 {
		return nil, NewValidationFailure("motor_id", "The selected motor_id is invalid.")
	}

	if file != nil {
		_ = s.storage.DeleteFile(image.Image)
		key, err := s.storage.StoreUpload(file, PrefixMotorGallery)
		if err != nil {
			return nil, NewValidationFailure("image", err.Error())
		}
		image.Image = key
	}

	image.MotorID = req.MotorID
	image.Desc = req.Desc
	image.Order = req.Order

	if err := s.db.Save(&image).Error; err != nil {
		return nil, fmt.Errorf("failed to update motor image: %w", err)
	}

	s.db.Preload("Motor").First(&image, image.ID)
	return &image, nil
}

func (s *MotorImageService) DeleteMotorImage(id uint) error {
	var image models.MotorImage
	if err := s.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("motor image not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	_ = s.storage.DeleteFile(image.Image)

	if err := s.db.Delete(&image).Error; err != nil {
		return fmt.Errorf("failed to delete motor image: %w", err)
	}
	return nil
}
