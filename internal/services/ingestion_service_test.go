// internal/services/ingestion_service_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/models"
)

// stubGenerator returns a canned reply or error.
type stubGenerator struct {
	reply string
	err   error

	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func ingestionFixture(t *testing.T) (*IngestionService, *gorm.DB, models.Brand, models.Category) {
	t.Helper()

	db := newTestDB(t)
	brand, category := seedCatalog(t, db)
	return NewIngestionService(db, newTestConfig(t)), db, brand, category
}

func pendingTask(t *testing.T, db *gorm.DB, name string) models.GenerationTask {
	t.Helper()

	task := models.GenerationTask{Name: name, Status: models.GenerationStatusPending}
	require.NoError(t, db.Create(&task).Error)
	return task
}

func TestIngestConsumesTask(t *testing.T) {
	svc, db, brand, category := ingestionFixture(t)

	color := models.Color{Name: "Merah", Hex: "#ff0000"}
	require.NoError(t, db.Create(&color).Error)
	feature := models.FeatureItem{Name: "Smart Key System"}
	require.NoError(t, db.Create(&feature).Error)
	group := models.SpecificationGroup{Name: "Mesin"}
	require.NoError(t, db.Create(&group).Error)
	item := models.SpecificationItem{SpecificationGroupID: group.ID, Name: "Tipe Mesin"}
	require.NoError(t, db.Create(&item).Error)

	task := pendingTask(t, db, "Honda CBR150R 2023")

	gen := &stubGenerator{reply: fmt.Sprintf(`Here you go:
{
  "name": "CBR150R",
  "brand_id": %d,
  "category_id": %d,
  "year_model": 2023,
  "engine_cc": 150,
  "low_price": 38000000,
  "up_price": 40000000,
  "desc": "Sport fairing ringan.",
  "colors": [%d],
  "features": [%d],
  "specifications": [{"spec_item_id": %d, "value": "4 langkah DOHC"}]
}`, brand.ID, category.ID, color.ID, feature.ID, item.ID)}

	result, err := svc.Ingest(context.Background(), gen)
	require.NoError(t, err)
	assert.Equal(t, "CBR150R", result.Motor.Name)
	assert.True(t, result.Motor.IsActive)
	require.NotNil(t, result.Motor.PublishedAt)
	assert.Len(t, result.Motor.AvailableColors, 1)
	assert.Len(t, result.Motor.Features, 1)
	assert.Len(t, result.Motor.Specifications, 1)

	// The prompt embeds the live catalog and the task name.
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Honda CBR150R 2023")
	assert.Contains(t, gen.prompts[0], "data_brand")
	assert.Contains(t, gen.prompts[0], "Tipe Mesin")

	var reloaded models.GenerationTask
	require.NoError(t, db.First(&reloaded, task.ID).Error)
	assert.Equal(t, models.GenerationStatusConsumed, reloaded.Status)
}

func TestIngestNoPendingTask(t *testing.T) {
	svc, _, _, _ := ingestionFixture(t)

	_, err := svc.Ingest(context.Background(), &stubGenerator{reply: "{}"})
	assert.ErrorIs(t, err, ErrNoPendingTask)
}

func TestIngestInvalidReferenceLeavesTaskPending(t *testing.T) {
	svc, db, _, category := ingestionFixture(t)
	task := pendingTask(t, db, "Ghost Bike")

	gen := &stubGenerator{reply: fmt.Sprintf(
		`{"name":"Ghost","brand_id":999,"category_id":%d,"year_model":2023,"engine_cc":150,"low_price":1,"up_price":2,"desc":"x"}`,
		category.ID)}

	_, err := svc.Ingest(context.Background(), gen)
	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Errors, "brand_id")

	var reloaded models.GenerationTask
	require.NoError(t, db.First(&reloaded, task.ID).Error)
	assert.Equal(t, models.GenerationStatusPending, reloaded.Status)

	var motorCount int64
	db.Model(&models.Motor{}).Count(&motorCount)
	assert.Zero(t, motorCount)
}

func TestIngestUnparseableReply(t *testing.T) {
	svc, db, _, _ := ingestionFixture(t)
	pendingTask(t, db, "Honda Tiger Revo")

	_, err := svc.Ingest(context.Background(), &stubGenerator{reply: "I cannot answer that."})
	var ingestErr *IngestError
	require.ErrorAs(t, err, &ingestErr)
	assert.Equal(t, "extract", ingestErr.Stage)
	assert.Equal(t, "I cannot answer that.", ingestErr.RawReply)
}

func TestIngestProviderError(t *testing.T) {
	svc, db, _, _ := ingestionFixture(t)
	pendingTask(t, db, "Honda Tiger Revo")

	_, err := svc.Ingest(context.Background(), &stubGenerator{err: errors.New("rate limited")})
	var ingestErr *IngestError
	require.ErrorAs(t, err, &ingestErr)
	assert.Equal(t, "provider", ingestErr.Stage)
}

func TestGenerateFromPayload(t *testing.T) {
	svc, _, brand, category := ingestionFixture(t)

	low, up := uint64(26000000), uint64(28000000)
	motor, err := svc.GenerateFromPayload(&GeneratedMotorRequest{
		Name:       "Vario 160",
		BrandID:    brand.ID,
		CategoryID: category.ID,
		YearModel:  2024,
		EngineCC:   160,
		LowPrice:   &low,
		UpPrice:    &up,
		Desc:       "Skutik premium.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Vario 160", motor.Name)
	require.NotNil(t, motor.PublishedAt)
}

func TestGenerateFromPayloadRequiresPrices(t *testing.T) {
	svc, db, brand, category := ingestionFixture(t)

	_, err := svc.GenerateFromPayload(&GeneratedMotorRequest{
		Name:       "Vario 160",
		BrandID:    brand.ID,
		CategoryID: category.ID,
		YearModel:  2024,
		EngineCC:   160,
		Desc:       "Skutik premium.",
	})
	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Errors, "lowprice")
	assert.Contains(t, failure.Errors, "upprice")

	var motorCount int64
	db.Model(&models.Motor{}).Count(&motorCount)
	assert.Zero(t, motorCount)
}

func TestEnqueueTask(t *testing.T) {
	svc, _, _, _ := ingestionFixture(t)

	task, err := svc.EnqueueTask("  Honda Tiger Revo 2012  ")
	require.NoError(t, err)
	assert.Equal(t, "Honda Tiger Revo 2012", task.Name)
	assert.Equal(t, models.GenerationStatusPending, task.Status)

	_, err = svc.EnqueueTask("   ")
	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)

	next, err := svc.NextTask()
	require.NoError(t, err)
	assert.Equal(t, task.ID, next.ID)
}

func TestFreePrompt(t *testing.T) {
	svc, _, _, _ := ingestionFixture(t)

	reply, err := svc.FreePrompt(context.Background(), &stubGenerator{reply: "hello"}, "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", reply)

	_, err = svc.FreePrompt(context.Background(), &stubGenerator{reply: "x"}, "  ")
	var failure *ValidationFailure
	assert.ErrorAs(t, err, &failure)
}
