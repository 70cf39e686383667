// internal/services/brand_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorinci/motorinci-api/internal/models"
)

func TestCreateBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewBrandService(db, newTestStorage(t))

	desc := "Japanese manufacturer"
	brand, err := svc.CreateBrand(&BrandRequest{Name: "Honda", Desc: &desc}, nil, nil)
	require.NoError(t, err)
	assert.NotZero(t, brand.ID)
	assert.Equal(t, "Honda", brand.Name)
	require.NotNil(t, brand.Desc)
	assert.Equal(t, desc, *brand.Desc)
}

func TestCreateBrandValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBrandService(db, newTestStorage(t))

	_, err := svc.CreateBrand(&BrandRequest{}, nil, nil)
	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Errors, "name")
}

func TestCreateBrandDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewBrandService(db, newTestStorage(t))

	_, err := svc.CreateBrand(&BrandRequest{Name: "Honda"}, nil, nil)
	require.NoError(t, err)

	_, err = svc.CreateBrand(&BrandRequest{Name: "Honda"}, nil, nil)
	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, []string{"The name has already been taken."}, failure.Errors["name"])
}

func TestUpdateBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewBrandService(db, newTestStorage(t))

	brand, err := svc.CreateBrand(&BrandRequest{Name: "Honda"}, nil, nil)
	require.NoError(t, err)

	updated, err := svc.UpdateBrand(brand.ID, &BrandRequest{Name: "Honda Motor"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Honda Motor", updated.Name)

	// A different brand may not take the same name.
	other, err := svc.CreateBrand(&BrandRequest{Name: "Yamaha"}, nil, nil)
	require.NoError(t, err)
	_, err = svc.UpdateBrand(other.ID, &BrandRequest{Name: "Honda Motor"}, nil, nil)
	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
}

func TestGetBrandNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBrandService(db, newTestStorage(t))

	_, err := svc.GetBrand(999)
	require.Error(t, err)
	assert.Equal(t, "brand not found", err.Error())
}

func TestDeleteBrandCascadesMotors(t *testing.T) {
	db := newTestDB(t)
	svc := NewBrandService(db, newTestStorage(t))

	brand, category := seedCatalog(t, db)
	seedMotor(t, db, brand, category, "CBR150R")

	require.NoError(t, svc.DeleteBrand(brand.ID))

	var motorCount int64
	db.Model(&models.Motor{}).Count(&motorCount)
	assert.Zero(t, motorCount)

	err := svc.DeleteBrand(brand.ID)
	require.Error(t, err)
	var failure *ValidationFailure
	assert.False(t, errors.As(err, &failure))
}

func TestMotorsByBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewBrandService(db, newTestStorage(t))

	brand, category := seedCatalog(t, db)
	other := models.Brand{Name: "Yamaha"}
	require.NoError(t, db.Create(&other).Error)

	seedMotor(t, db, brand, category, "CBR150R")
	seedMotor(t, db, other, category, "R15")

	motors, err := svc.MotorsByBrand(brand.ID)
	require.NoError(t, err)
	require.Len(t, motors, 1)
	assert.Equal(t, "CBR150R", motors[0].Name)
}
