// internal/services/review_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	brand, category := seedCatalog(t, db)
	motor := seedMotor(t, db, brand, category, "CBR150R")

	comment := "Tarikan enteng, irit."
	review, err := svc.CreateReview(&ReviewRequest{
		MotorID:       motor.ID,
		ReviewerName:  "Budi",
		ReviewerEmail: "budi@example.com",
		Rating:        5,
		Comment:       &comment,
	})
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.False(t, review.IsApproved)
}

func TestCreateReviewValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	brand, category := seedCatalog(t, db)
	motor := seedMotor(t, db, brand, category, "CBR150R")

	_, err := svc.CreateReview(&ReviewRequest{
		MotorID:       motor.ID,
		ReviewerName:  "Budi",
		ReviewerEmail: "not-an-email",
		Rating:        6,
	})
	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Errors, "revieweremail")
	assert.Contains(t, failure.Errors, "rating")

	_, err = svc.CreateReview(&ReviewRequest{
		MotorID:       999,
		ReviewerName:  "Budi",
		ReviewerEmail: "budi@example.com",
		Rating:        4,
	})
	require.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Errors, "motor_id")
}
