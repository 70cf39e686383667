// internal/services/brand_service.go
package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/models"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type BrandService struct {
	db      *gorm.DB
	storage *StorageService
}

type BrandRequest struct {
	Name string  `json:"name" form:"name" validate:"required,max=255"`
	Desc *string `json:"desc,omitempty" form:"desc"`
}

func NewBrandService(db *gorm.DB, storage *StorageService) *BrandService {
	return &BrandService{db: db, storage: storage}
}

func (s *BrandService) ListBrands(params utils.PaginationParams) ([]models.Brand, int64, error) {
	var total int64
	if err := s.db.Model(&models.Brand{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	var brands []models.Brand
	if err := utils.ApplyPagination(s.db, params).Find(&brands).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch brands: %w", err)
	}

	return brands, total, nil
}

func (s *BrandService) GetBrand(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.Preload("Motors").First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("brand not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &brand, nil
}

func (s *BrandService) CreateBrand(req *BrandRequest, icon, image *multipart.FileHeader) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.Brand{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	brand := &models.Brand{
		Name: req.Name,
		Desc: req.Desc,
	}

	if icon != nil {
		key, err := s.storeUpload(icon, PrefixBrandIcons)
		if err != nil {
			return nil, err
		}
		brand.Icon = &key
	}
	if image != nil {
		key, err := s.storeUpload(image, PrefixBrandImages)
		if err != nil {
			return nil, err
		}
		brand.Image = &key
	}

	if err := s.db.Create(brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	return brand, nil
}

func (s *BrandService) UpdateBrand(id uint, req *BrandRequest, icon, image *multipart.FileHeader) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("brand not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.Brand{}).Where("name = ? AND id <> ?", req.Name, id).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	// Replacing a file deletes the previous one first
	if icon != nil {
		if brand.Icon != nil {
			_ = s.storage.DeleteFile(*brand.Icon)
		}
		key, err := s.storeUpload(icon, PrefixBrandIcons)
		if err != nil {
			return nil, err
		}
		brand.Icon = &key
	}
	if image != nil {
		if brand.Image != nil {
			_ = s.storage.DeleteFile(*brand.Image)
		}
		key, err := s.storeUpload(image, PrefixBrandImages)
		if err != nil {
			return nil, err
		}
		brand.Image = &key
	}

	brand.Name = req.Name
	brand.Desc = req.Desc

	if err := s.db.Save(&brand).Error; err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}

	return &brand, nil
}

func (s *BrandService) DeleteBrand(id uint) error {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("brand not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if brand.Icon != nil {
		_ = s.storage.DeleteFile(*brand.Icon)
	}
	if brand.Image != nil {
		_ = s.storage.DeleteFile(*brand.Image)
	}

	if err := s.db.Delete(&brand).Error; err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	return nil
}

// MotorsByBrand returns the brand's motors fully eager-loaded, newest year
// first within each name.
func (s *BrandService) MotorsByBrand(id uint) ([]models.Motor, error) {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("brand not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var motors []models.Motor
	if err := motorEagerQuery(s.db).
		Where("brand_id = ?", id).
		Order("name ASC").
		Order("year_model DESC").
		Find(&motors).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch brand motors: %w", err)
	}

	return motors, nil
}

func (s *BrandService) storeUpload(file *multipart.FileHeader, prefix string) (string, error) {
	key, err := s.storage.StoreUpload(file, prefix)
	if err != nil {
		return "", NewValidationFailure("file", err.Error())
	}
	return key, nil
}
