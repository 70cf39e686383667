// internal/services/motor_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/models"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type MotorService struct {
	db      *gorm.DB
	storage *StorageService
}

type MotorRequest struct {
	Name         string  `json:"name" form:"name" validate:"required,max=255"`
	BrandID      uint    `json:"brand_id" form:"brand_id" validate:"required"`
	CategoryID   uint    `json:"category_id" form:"category_id" validate:"required"`
	YearModel    int     `json:"year_model" form:"year_model" validate:"required,min=1900,max=9999"`
	EngineCC     int     `json:"engine_cc" form:"engine_cc" validate:"required"`
	LowPrice     *uint64 `json:"low_price,omitempty" form:"low_price"`
	UpPrice      *uint64 `json:"up_price,omitempty" form:"up_price"`
	Desc         *string `json:"desc,omitempty" form:"desc"`
	BrochureURL  *string `json:"brochure_url,omitempty" form:"brochure_url"`
	SparepartURL *string `json:"sparepart_url,omitempty" form:"sparepart_url"`
	IsActive     *bool   `json:"is_active,omitempty" form:"is_active"`
	IsFeatured   *bool   `json:"is_featured,omitempty" form:"is_featured"`
}

type FrontHome struct {
	Motors     []models.Motor    `json:"motors"`
	Categories []models.Category `json:"categories"`
	Brands     []models.Brand    `json:"brands"`
}

func NewMotorService(db *gorm.DB, storage *StorageService) *MotorService {
	return &MotorService{db: db, storage: storage}
}

// motorEagerQuery loads a motor with every relation the catalog views render.
func motorEagerQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Motor{}).
		Preload("Brand").
		Preload("Category").
		Preload("AvailableColors.Color").
		Preload("Features.FeatureItem").
		Preload("Specifications.SpecificationItem.SpecificationGroup").
		Preload("Images").
		Preload("Reviews")
}

func (s *MotorService) ListMotors(params utils.PaginationParams) ([]models.Motor, int64, error) {
	var total int64
	if err := s.db.Model(&models.Motor{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count motors: %w", err)
	}

	var motors []models.Motor
	if err := utils.ApplyPagination(motorEagerQuery(s.db), params).Find(&motors).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch motors: %w", err)
	}

	return motors, total, nil
}

func (s *MotorService) GetMotor(id uint) (*models.Motor, error) {
	var motor models.Motor
	if err := motorEagerQuery(s.db).First(&motor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("motor not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &motor, nil
}

func (s *MotorService) CreateMotor(req *MotorRequest) (*models.Motor, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	if err := s.checkReferences(req.BrandID, req.CategoryID); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	isFeatured := false
	if req.IsFeatured != nil {
		isFeatured = *req.IsFeatured
	}

	motor := &models.Motor{
		Name:         req.Name,
		BrandID:      req.BrandID,
		CategoryID:   req.CategoryID,
		YearModel:    req.YearModel,
		EngineCC:     req.EngineCC,
		LowPrice:     req.LowPrice,
		UpPrice:      req.UpPrice,
		Desc:         req.Desc,
		BrochureURL:  req.BrochureURL,
		SparepartURL: req.SparepartURL,
		IsActive:     isActive,
		IsFeatured:   isFeatured,
	}

	// Active motors publish immediately
	if isActive {
		now := time.Now()
		motor.PublishedAt = &now
	}

	if err := s.db.Create(motor).Error; err != nil {
		return nil, fmt.Errorf("failed to create motor: %w", err)
	}

	var created models.Motor
	motorEagerQuery(s.db).First(&created, motor.ID)
	return &created, nil
}

func (s *MotorService) UpdateMotor(id uint, req *MotorRequest) (*models.Motor, error) {
	var motor models.Motor
	if err := s.db.First(&motor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("motor not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	if err := s.checkReferences(req.BrandID, req.CategoryID); err != nil {
		return nil, err
	}

	motor.Name = req.Name
	motor.BrandID = req.BrandID
	motor.CategoryID = req.CategoryID
	motor.YearModel = req.YearModel
	motor.EngineCC = req.EngineCC
	motor.LowPrice = req.LowPrice
	motor.UpPrice = req.UpPrice
	motor.Desc = req.Desc
	motor.BrochureURL = req.BrochureURL
	motor.SparepartURL = req.SparepartURL
	if req.IsFeatured != nil {
		motor.IsFeatured = *req.IsFeatured
	}

	if req.IsActive != nil {
		motor.IsActive = *req.IsActive
	}
	if motor.IsActive {
		if motor.PublishedAt == nil {
			now := time.Now()
			motor.PublishedAt = &now
		}
	} else {
		motor.PublishedAt = nil
	}

	if err := s.db.Save(&motor).Error; err != nil {
		return nil, fmt.Errorf("failed to update motor: %w", err)
	}

	var updated models.Motor
	motorEagerQuery(s.db).First(&updated, motor.ID)
	return &updated, nil
}

func (s *MotorService) DeleteMotor(id uint) error {
	var motor models.Motor
	if err := s.db.Preload("Images").Preload("AvailableColors").First(&motor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("motor not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Remove stored files before the cascade wipes the rows
	for _, img := range motor.Images {
		_ = s.storage.DeleteFile(img.Image)
	}
	for _, ac := range motor.AvailableColors {
		if ac.Image != nil {
			_ = s.storage.DeleteFile(*ac.Image)
		}
	}

	if err := s.db.Delete(&motor).Error; err != nil {
		return fmt.Errorf("failed to delete motor: %w", err)
	}

	return nil
}

// SearchMotors matches case-insensitive substrings of the motor name.
func (s *MotorService) SearchMotors(search string) ([]models.Motor, error) {
	term := "%" + strings.ToLower(search) + "%"

	var motors []models.Motor
	if err := motorEagerQuery(s.db).
		Where("LOWER(name) LIKE ?", term).
		Find(&motors).Error; err != nil {
		return nil, fmt.Errorf("failed to search motors: %w", err)
	}

	return motors, nil
}

func (s *MotorService) RandomMotors(limit int) ([]models.Motor, error) {
	if limit <= 0 {
		limit = 20
	}

	var motors []models.Motor
	if err := motorEagerQuery(s.db).
		Order("RANDOM()").
		Limit(limit).
		Find(&motors).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch random motors: %w", err)
	}

	return motors, nil
}

// CompareMotors loads both motors fully; either missing is a not-found.
func (s *MotorService) CompareMotors(id, id2 uint) (*models.Motor, *models.Motor, error) {
	first, err := s.GetMotor(id)
	if err != nil {
		return nil, nil, err
	}
	second, err := s.GetMotor(id2)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// FrontHome aggregates the landing page data.
func (s *MotorService) FrontHome() (*FrontHome, error) {
	motors, err := s.RandomMotors(10)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	var brands []models.Brand
	if err := s.db.Preload("Motors").Order("name ASC").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch brands: %w", err)
	}

	return &FrontHome{
		Motors:     motors,
		Categories: categories,
		Brands:     brands,
	}, nil
}

func (s *MotorService) checkReferences(brandID, categoryID uint) error {
	var count int64
	s.db.Model(&models.Brand{}).Where("id = ?", brandID).Count(&count)
	if count == 0 {
		return NewValidationFailure("brand_id", "The selected brand_id is invalid.")
	}
	s.db.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count)
	if count == 0 {
		return NewValidationFailure("category_id", "The selected category_id is invalid.")
	}
	return nil
}
