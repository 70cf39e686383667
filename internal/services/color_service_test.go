// internal/services/color_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorinci/motorinci-api/internal/models"
)

func TestCreateColorRejectsShortHex(t *testing.T) {
	db := newTestDB(t)
	svc := NewColorService(db, newTestStorage(t))

	_, err := svc.CreateColor(&ColorRequest{Name: "Merah", Hex: "#f00"})
	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Errors, "hex")

	color, err := svc.CreateColor(&ColorRequest{Name: "Merah", Hex: "#ff0000"})
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", color.Hex)
}

func TestAvailableColorPairUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewColorService(db, newTestStorage(t))

	brand, category := seedCatalog(t, db)
	motor := seedMotor(t, db, brand, category, "CBR150R")
	color := models.Color{Name: "Merah", Hex: "#ff0000"}
	require.NoError(t, db.Create(&color).Error)

	row, err := svc.CreateAvailableColor(&AvailableColorRequest{MotorID: motor.ID, ColorID: color.ID}, nil)
	require.NoError(t, err)
	require.NotNil(t, row.Color)
	assert.Equal(t, "Merah", row.Color.Name)

	_, err = svc.CreateAvailableColor(&AvailableColorRequest{MotorID: motor.ID, ColorID: color.ID}, nil)
	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
}

func TestAvailableColorChecksReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewColorService(db, newTestStorage(t))

	_, err := svc.CreateAvailableColor(&AvailableColorRequest{MotorID: 1, ColorID: 1}, nil)
	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Errors, "motor_id")
}
