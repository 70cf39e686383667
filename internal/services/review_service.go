// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/models"
	"github.com/motorinci/motorinci-api/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type ReviewRequest struct {
	MotorID       uint    `json:"motor_id" form:"motor_id" validate:"required"`
	ReviewerName  string  `json:"reviewer_name" form:"reviewer_name" validate:"required,max=255"`
	ReviewerEmail string  `json:"reviewer_email" form:"reviewer_email" validate:"required,email"`
	Rating        int     `json:"rating" form:"rating" validate:"required,min=1,max=5"`
	Comment       *string `json:"comment,omitempty" form:"comment"`
	IsApproved    *bool   `json:"is_approved,omitempty" form:"is_approved"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) ListReviews(params utils.PaginationParams) ([]models.Review, int64, error) {
	var total int64
	if err := s.db.Model(&models.Review{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var reviews []models.Review
	if err := utils.ApplyPagination(s.db.Preload("Motor"), params).Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, total, nil
}

func (s *ReviewService) GetReview(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.Preload("Motor").First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("review not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &review, nil
}

func (s *ReviewService) CreateReview(req *ReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}

	var count int64
	s.db.Model(&models.Motor{}).Where("id = ?", req.MotorID).Count(&count)
	if count == 0 {
		return nil, NewValidationFailure("motor_id", "The selected motor_id is invalid.")
	}

	review := &models.Review{
		MotorID:       req.MotorID,
		ReviewerName:  req.ReviewerName,
		ReviewerEmail: req.ReviewerEmail,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if req.IsApproved != nil {
		review.IsApproved = *req.IsApproved
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.db.Preload("Motor").First(review, review.ID)
	return review, nil
}

func (s *ReviewService) UpdateReview(id uint, req *ReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("review not found")
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

	review.MotorID = req.MotorID
	review.ReviewerName = req.ReviewerName
	review.ReviewerEmail = req.ReviewerEmail
	review.Rating = req.Rating
	review.Comment = req.Comment
	if req.IsApproved != nil {
		review.IsApproved = *req.IsApproved
	}

	if err := s.db.Save(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	s.db.Preload("Motor").First(&review, review.ID)
	return &review, nil
}

func (s *ReviewService) DeleteReview(id uint) error {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("review not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&review).Error; err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
