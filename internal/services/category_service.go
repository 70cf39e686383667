// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/models"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type CategoryService struct {
	db      *gorm.DB
	storage *StorageService
}

type CategoryRequest struct {
	Name string  `json:"name" form:"name" validate:"required,max=255"`
	Desc *string `json:"desc,omitempty" form:"desc"`
}

func NewCategoryService(db *gorm.DB, storage *StorageService) *CategoryService {
	return &CategoryService{db: db, storage: storage}
}

func (s *CategoryService) ListCategories(params utils.PaginationParams) ([]models.Category, int64, error) {
	var total int64
	if err := s.db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	var categories []models.Category
	if err := utils.ApplyPagination(s.db, params).Find(&categories).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, total, nil
}

func (s *CategoryService) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) CreateCategory(req *CategoryRequest, image *multipart.FileHeader) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.Category{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	category := &models.Category{
		Name: req.Name,
		Desc: req.Desc,
	}

	if image != nil {
		key, err := s.storage.StoreUpload(image, PrefixCategoryImages)
		if err != nil {
			return nil, NewValidationFailure("image", err.Error())
		}
		category.Image = &key
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) UpdateCategory(id uint, req *CategoryRequest, image *multipart.FileHeader) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.Category{}).Where("name = ? AND id <> ?", req.Name, id).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	if image != nil {
		if category.Image != nil {
			_ = s.storage.DeleteFile(*category.Image)
		}
		key, err := s.storage.StoreUpload(image, PrefixCategoryImages)
		if err != nil {
			return nil, NewValidationFailure("image", err.Error())
		}
		category.Image = &key
	}

	category.Name = req.Name
	category.Desc = req.Desc

	if err := s.db.Save(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &category, nil
}

func (s *CategoryService) DeleteCategory(id uint) error {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("category not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if category.Image != nil {
		_ = s.storage.DeleteFile(*category.Image)
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

func (s *CategoryService) MotorsByCategory(id uint) ([]models.Motor, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var motors []models.Motor
	if err := motorEagerQuery(s.db).
		Where("category_id = ?", id).
		Order("name ASC").
		Order("year_model DESC").
		Find(&motors).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch category motors: %w", err)
	}

	return motors, nil
}
