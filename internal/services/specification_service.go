// internal/services/specification_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/models"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type SpecificationService struct {
	db *gorm.DB
}

type SpecificationGroupRequest struct {
	Name  string `json:"name" form:"name" validate:"required,max=255"`
	Order int    `json:"order" form:"order"`
}

type SpecificationItemRequest struct {
	SpecificationGroupID uint    `json:"specification_group_id" form:"specification_group_id" validate:"required"`
	Name                 string  `json:"name" form:"name" validate:"required,max=255"`
	Unit                 *string `json:"unit,omitempty" form:"unit"`
	Desc                 *string `json:"desc,omitempty" form:"desc"`
	Order                int     `json:"order" form:"order"`
}

type MotorSpecificationRequest struct {
	MotorID             uint   `json:"motor_id" form:"motor_id" validate:"required"`
	SpecificationItemID uint   `json:"specification_item_id" form:"specification_item_id" validate:"required"`
	Value               string `json:"value" form:"value" validate:"required,max=255"`
}

func NewSpecificationService(db *gorm.DB) *SpecificationService {
	return &SpecificationService{db: db}
}

// Specification groups.

func (s *SpecificationService) ListGroups(params utils.PaginationParams) ([]models.SpecificationGroup, int64, error) {
	var total int64
	if err := s.db.Model(&models.SpecificationGroup{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count specification groups: %w", err)
	}

	var groups []models.SpecificationGroup
	if err := utils.ApplyPagination(s.db.Preload("Items").Order("\"order\" ASC"), params).Find(&groups).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch specification groups: %w", err)
	}

	return groups, total, nil
}

func (s *SpecificationService) GetGroup(id uint) (*models.SpecificationGroup, error) {
	var group models.SpecificationGroup
	if err := s.db.Preload("Items").First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("specification group not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &group, nil
}

func (s *SpecificationService) CreateGroup(req *SpecificationGroupRequest) (*models.SpecificationGroup, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.SpecificationGroup{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	group := &models.SpecificationGroup{Name: req.Name, Order: req.Order}
	if err := s.db.Create(group).Error; err != nil {
		return nil, fmt.Errorf("failed to create specification group: %w", err)
	}
	return group, nil
}

func (s *SpecificationService) UpdateGroup(id uint, req *SpecificationGroupRequest) (*models.SpecificationGroup, error) {
	var group models.SpecificationGroup
	if err := s.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("specification group not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.SpecificationGroup{}).Where("name = ? AND id <> ?", req.Name, id).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	group.Name = req.Name
	group.Order = req.Order
	if err := s.db.Save(&group).Error; err != nil {
		return nil, fmt.Errorf("failed to update specification group: %w", err)
	}
	return &group, nil
}

func (s *SpecificationService) DeleteGroup(id uint) error {
	var group models.SpecificationGroup
	if err := s.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("specification group not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&group).Error; err != nil {
		return fmt.Errorf("failed to delete specification group: %w", err)
	}
	return nil
}

// Specification items.

func (s *SpecificationService) ListItems(params utils.PaginationParams) ([]models.SpecificationItem, int64, error) {
	var total int64
	if err := s.db.Model(&models.SpecificationItem{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count specification items: %w", err)
	}

	var items []models.SpecificationItem
	if err := utils.ApplyPagination(s.db.Preload("SpecificationGroup").Order("\"order\" ASC"), params).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch specification items: %w", err)
	}

	return items, total, nil
}

func (s *SpecificationService) GetItem(id uint) (*models.SpecificationItem, error) {
	var item models.SpecificationItem
	if err := s.db.Preload("SpecificationGroup").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("specification item not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

func (s *SpecificationService) CreateItem(req *SpecificationItemRequest) (*models.SpecificationItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.SpecificationGroup{}).Where("id = ?", req.SpecificationGroupID).Count(&count)
	if count == 0 {
		return nil, NewValidationFailure("specification_group_id", "The selected specification_group_id is invalid.")
	}

	s.db.Model(&models.SpecificationItem{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	item := &models.SpecificationItem{
		SpecificationGroupID: req.SpecificationGroupID,
		Name:                 req.Name,
		Unit:                 req.Unit,
		Desc:                 req.Desc,
		Order:                req.Order,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create specification item: %w", err)
	}

	s.db.Preload("SpecificationGroup").First(item, item.ID)
	return item, nil
}

func (s *SpecificationService) UpdateItem(id uint, req *SpecificationItemRequest) (*models.SpecificationItem, error) {
	var item models.SpecificationItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("specification item not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.SpecificationGroup{}).Where("id = ?", req.SpecificationGroupID).Count(&count)
	if count == 0 {
		return nil, NewValidationFailure("specification_group_id", "The selected specification_group_id is invalid.")
	}

	s.db.Model(&models.SpecificationItem{}).Where("name = ? AND id <> ?", req.Name, id).Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("name", "The name has already been taken.")
	}

	item.SpecificationGroupID = req.SpecificationGroupID
	item.Name = req.Name
	item.Unit = req.Unit
	item.Desc = req.Desc
	item.Order = req.Order

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update specification item: %w", err)
	}

	s.db.Preload("SpecificationGroup").First(&item, item.ID)
	return &item, nil
}

func (s *SpecificationService) DeleteItem(id uint) error {
	var item models.SpecificationItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("specification item not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("failed to delete specification item: %w", err)
	}
	return nil
}

// Motor specifications (motor <-> item join carrying the value).

func (s *SpecificationService) ListMotorSpecifications(params utils.PaginationParams) ([]models.MotorSpecification, int64, error) {
	var total int64
	if err := s.db.Model(&models.MotorSpecification{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count motor specifications: %w", err)
	}

	var rows []models.MotorSpecification
	query := s.db.Preload("Motor").Preload("SpecificationItem").Preload("SpecificationItem.SpecificationGroup")
	if err := utils.ApplyPagination(query, params).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch motor specifications: %w", err)
	}

	return rows, total, nil
}

func (s *SpecificationService) GetMotorSpecification(id uint) (*models.MotorSpecification, error) {
	var row models.MotorSpecification
	if err := s.db.Preload("Motor").Preload("SpecificationItem").Preload("SpecificationItem.SpecificationGroup").
		First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("motor specification not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &row, nil
}

func (s *SpecificationService) CreateMotorSpecification(req *MotorSpecificationRequest) (*models.MotorSpecification, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	if err := s.checkMotorSpecReferences(req.MotorID, req.SpecificationItemID); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.MotorSpecification{}).
		Where("motor_id = ? AND specification_item_id = ?", req.MotorID, req.SpecificationItemID).
		Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("specification_item_id", "This specification is already registered for the motor.")
	}

	row := &models.MotorSpecification{
		MotorID:             req.MotorID,
		SpecificationItemID: req.SpecificationItemID,
		Value:               req.Value,
	}

	if err := s.db.Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create motor specification: %w", err)
	}

	s.db.Preload("Motor").Preload("SpecificationItem").First(row, row.ID)
	return row, nil
}

func (s *SpecificationService) UpdateMotorSpecification(id uint, req *MotorSpecificationRequest) (*models.MotorSpecification, error) {
	var row models.MotorSpecification
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("motor specification not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	if err := s.checkMotorSpecReferences(req.MotorID, req.SpecificationItemID); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.MotorSpecification{}).
		Where("motor_id = ? AND specification_item_id = ? AND id <> ?", req.MotorID, req.SpecificationItemID, id).
		Count(&count)
	if count > 0 {
		return nil, NewValidationFailure("specification_item_id", "This specification is already registered for the motor.")
	}

	row.MotorID = req.MotorID
	row.SpecificationItemID = req.SpecificationItemID
	row.Value = req.Value

	if err := s.db.Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update motor specification: %w", err)
	}

	s.db.Preload("Motor").Preload("SpecificationItem").First(&row, row.ID)
	return &row, nil
}

func (s *SpecificationService) DeleteMotorSpecification(id uint) error {
	var row models.MotorSpecification
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("motor specification not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&row).Error; err != nil {
		return fmt.Errorf("failed to delete motor specification: %w", err)
	}
	return nil
}

func (s *SpecificationService) checkMotorSpecReferences(motorID, itemID uint) error {
	var count int64
	s.db.Model(&models.Motor{}).Where("id = ?", motorID).Count(&count)
	if count == 0 {
		return NewValidationFailure("motor_id", "The selected motor_id is invalid.")
	}
	s.db.Model(&models.SpecificationItem{}).Where("id = ?", itemID).Count(&count)
	if count == 0 {
		return NewValidationFailure("specification_item_id", "The selected specification_item_id is invalid.")
	}
	return nil
}
