// internal/services/ingestion_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/ai"
	"github.com/motorinci/motorinci-api/internal/config"
	"github.com/motorinci/motorinci-api/internal/models"
	"github.com/motorinci/motorinci-api/internal/utils"
)

// ErrNoPendingTask signals an empty generation queue.
var ErrNoPendingTask = errors.New("no pending generation task")

// IngestError wraps a provider, extraction or parse failure together with the
// raw model reply for diagnostics.
type IngestError struct {
	Stage    string // provider, extract, parse
	RawReply string
	Err      error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("ingestion %s failed: %v", e.Stage, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

type IngestionService struct {
	db  *gorm.DB
	cfg *config.Config
}

// GeneratedMotorRequest is the payload shape the models are asked to emit.
// The manual generate endpoint accepts the same shape.
type GeneratedMotorRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	BrandID        uint            `json:"brand_id" validate:"required"`
	CategoryID     uint            `json:"category_id" validate:"required"`
	YearModel      int             `json:"year_model" validate:"required,min=1900,max=9999"`
	EngineCC       int             `json:"engine_cc" validate:"required"`
	LowPrice       *uint64         `json:"low_price" validate:"required"`
	UpPrice        *uint64         `json:"up_price" validate:"required"`
	Desc           string          `json:"desc" validate:"required"`
	Colors         []uint          `json:"colors,omitempty"`
	Features       []uint          `json:"features,omitempty"`
	Specifications []GeneratedSpec `json:"specifications,omitempty" validate:"dive"`
}

type GeneratedSpec struct {
	SpecItemID uint   `json:"spec_item_id" validate:"required"`
	Value      string `json:"value" validate:"required"`
}

// IngestResult reports what a run produced.
type IngestResult struct {
	Task    *models.GenerationTask `json:"task"`
	Motor   *models.Motor          `json:"motor"`
	Payload *GeneratedMotorRequest `json:"payload"`
}

func NewIngestionService(db *gorm.DB, cfg *config.Config) *IngestionService {
	return &IngestionService{db: db, cfg: cfg}
}

// Generator construction per provider.

func (s *IngestionService) GeminiGenerator() ai.TextGenerator {
	return ai.NewGeminiGenerator(
		s.cfg.AI.GeminiBaseURL,
		s.cfg.AI.GeminiAPIKey,
		ai.GeminiModel,
		time.Duration(s.cfg.AI.RequestTimeout)*time.Second,
	)
}

func (s *IngestionService) OpenRouterGenerator(modelID int) ai.TextGenerator {
	return s.openRouterForModel(ai.ModelForID(modelID))
}

func (s *IngestionService) RandomGenerator() ai.TextGenerator {
	return s.openRouterForModel(ai.RandomModel())
}

func (s *IngestionService) openRouterForModel(model string) ai.TextGenerator {
	return ai.NewOpenRouterGenerator(
		s.cfg.AI.OpenRouterBaseURL,
		s.cfg.AI.OpenRouterAPIKey,
		model,
		time.Duration(s.cfg.AI.RequestTimeout)*time.Second,
	)
}

// NextTask returns the oldest pending generation task.
func (s *IngestionService) NextTask() (*models.GenerationTask, error) {
	var task models.GenerationTask
	if err := s.db.Where("status = ?", models.GenerationStatusPending).
		Order("id ASC").First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPendingTask
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &task, nil
}

// EnqueueTask queues a motorcycle model name for ingestion.
func (s *IngestionService) EnqueueTask(name string) (*models.GenerationTask, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationFailure("name", "The name field is required.")
	}

	task := &models.GenerationTask{
		Name:   name,
		Status: models.GenerationStatusPending,
	}
	if err := s.db.Create(task).Error; err != nil {
		return nil, fmt.Errorf("failed to enqueue generation task: %w", err)
	}
	return task, nil
}

// Ingest runs one full generation cycle with the given provider:
// task -> prompt -> model call -> JSON extraction -> validation -> persist.
// Any failure rolls back completely and leaves the task pending.
func (s *IngestionService) Ingest(ctx context.Context, gen ai.TextGenerator) (*IngestResult, error) {
	task, err := s.NextTask()
	if err != nil {
		return nil, err
	}

	prompt, err := s.BuildPrompt(task.Name)
	if err != nil {
		return nil, err
	}

	reply, err := gen.Generate(ctx, prompt)
	if err != nil {
		return nil, &IngestError{Stage: "provider", Err: err}
	}

	raw, err := ai.FirstJSONObject(reply)
	if err != nil {
		return nil, &IngestError{Stage: "extract", RawReply: reply, Err: err}
	}

	var payload GeneratedMotorRequest
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &IngestError{Stage: "parse", RawReply: reply, Err: err}
	}

	motor, err := s.persistGenerated(&payload, task)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"task_id":  task.ID,
		"motor_id": motor.ID,
		"name":     motor.Name,
	}).Info("Generation task ingested")

	return &IngestResult{Task: task, Motor: motor, Payload: &payload}, nil
}

// GenerateFromPayload persists a manually supplied payload without touching
// the task queue.
func (s *IngestionService) GenerateFromPayload(req *GeneratedMotorRequest) (*models.Motor, error) {
	return s.persistGenerated(req, nil)
}

// FreePrompt proxies an arbitrary prompt to the provider and returns raw text.
func (s *IngestionService) FreePrompt(ctx context.Context, gen ai.TextGenerator, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", NewValidationFailure("prompt", "The prompt field is required.")
	}
	reply, err := gen.Generate(ctx, prompt)
	if err != nil {
		return "", &IngestError{Stage: "provider", Err: err}
	}
	return reply, nil
}

func (s *IngestionService) persistGenerated(req *GeneratedMotorRequest, task *models.GenerationTask) (*models.Motor, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationFailure{Errors: utils.GetValidationErrorMap(err)}
	}
	if err := s.checkCatalogReferences(req); err != nil {
		return nil, err
	}

	now := time.Now()
	motor := &models.Motor{
		Name:        req.Name,
		BrandID:     req.BrandID,
		CategoryID:  req.CategoryID,
		YearModel:   req.YearModel,
		EngineCC:    req.EngineCC,
		LowPrice:    req.LowPrice,
		UpPrice:     req.UpPrice,
		Desc:        &req.Desc,
		IsActive:    true,
		PublishedAt: &now,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(motor).Error; err != nil {
			return fmt.Errorf("failed to create motor: %w", err)
		}

		for _, colorID := range req.Colors {
			row := models.AvailableColor{MotorID: motor.ID, ColorID: colorID}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create available color: %w", err)
			}
		}

		for _, featureID := range req.Features {
			row := models.MotorFeature{MotorID: motor.ID, FeatureItemID: featureID}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create motor feature: %w", err)
			}
		}

		for _, spec := range req.Specifications {
			row := models.MotorSpecification{
				MotorID:             motor.ID,
				SpecificationItemID: spec.SpecItemID,
				Value:               spec.Value,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create motor specification: %w", err)
			}
		}

		if task != nil {
			if err := tx.Model(&models.GenerationTask{}).
				Where("id = ?", task.ID).
				Update("status", models.GenerationStatusConsumed).Error; err != nil {
				return fmt.Errorf("failed to consume generation task: %w", err)
			}
			task.Status = models.GenerationStatusConsumed
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	var created models.Motor
	motorEagerQuery(s.db).First(&created, motor.ID)
	return &created, nil
}

func (s *IngestionService) checkCatalogReferences(req *GeneratedMotorRequest) error {
	failure := &ValidationFailure{}

	var count int64
	s.db.Model(&models.Brand{}).Where("id = ?", req.BrandID).Count(&count)
	if count == 0 {
		failure.Add("brand_id", "The selected brand_id is invalid.")
	}
	s.db.Model(&models.Category{}).Where("id = ?", req.CategoryID).Count(&count)
	if count == 0 {
		failure.Add("category_id", "The selected category_id is invalid.")
	}

	for i, colorID := range req.Colors {
		s.db.Model(&models.Color{}).Where("id = ?", colorID).Count(&count)
		if count == 0 {
			failure.Add(fmt.Sprintf("colors.%d", i), "The selected color is invalid.")
		}
	}
	for i, featureID := range req.Features {
		s.db.Model(&models.FeatureItem{}).Where("id = ?", featureID).Count(&count)
		if count == 0 {
			failure.Add(fmt.Sprintf("features.%d", i), "The selected feature is invalid.")
		}
	}
	for i, spec := range req.Specifications {
		s.db.Model(&models.SpecificationItem{}).Where("id = ?", spec.SpecItemID).Count(&count)
		if count == 0 {
			failure.Add(fmt.Sprintf("specifications.%d.spec_item_id", i), "The selected spec_item_id is invalid.")
		}
	}

	if failure.HasErrors() {
		return failure
	}
	return nil
}

// BuildPrompt renders the ingestion prompt around the live reference catalog.
func (s *IngestionService) BuildPrompt(taskName string) (string, error) {
	var brands []models.Brand
	if err := s.db.Order("id ASC").Find(&brands).Error; err != nil {
		return "", fmt.Errorf("failed to load brands: %w", err)
	}
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return "", fmt.Errorf("failed to load categories: %w", err)
	}
	var colors []models.Color
	if err := s.db.Order("id ASC").Find(&colors).Error; err != nil {
		return "", fmt.Errorf("failed to load colors: %w", err)
	}
	var features []models.FeatureItem
	if err := s.db.Order("id ASC").Find(&features).Error; err != nil {
		return "", fmt.Errorf("failed to load feature items: %w", err)
	}
	var specItems []models.SpecificationItem
	if err := s.db.Order("id ASC").Find(&specItems).Error; err != nil {
		return "", fmt.Errorf("failed to load specification items: %w", err)
	}

	catalog := map[string][]catalogEntry{
		"data_brand":              toCatalogEntries(brands, func(b models.Brand) (uint, string) { return b.ID, b.Name }),
		"data_category":           toCatalogEntries(categories, func(c models.Category) (uint, string) { return c.ID, c.Name }),
		"data_color":              toCatalogEntries(colors, func(c models.Color) (uint, string) { return c.ID, c.Name }),
		"data_feature":            toCatalogEntries(features, func(f models.FeatureItem) (uint, string) { return f.ID, f.Name }),
		"data_specification_item": toCatalogEntries(specItems, func(i models.SpecificationItem) (uint, string) { return i.ID, i.Name }),
	}

	catalogJSON, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render catalog: %w", err)
	}

	var b strings.Builder
	b.WriteString("Anda adalah AI asisten data otomotif yang sangat akurat. Tugas Anda adalah memberikan data spesifikasi lengkap untuk model sepeda motor tertentu. Anda HARUS menghasilkan output dalam format JSON tunggal yang valid tanpa teks atau penjelasan tambahan.\n\n")
	b.WriteString("Gunakan data master di bawah ini untuk mengisi nilai brand_id, category_id, serta ID dalam array colors dan features. Untuk array specifications, gunakan id dari data specification_item sebagai nilai spec_item_id.\n\n")
	b.WriteString("Data Master Referensi:\n")
	b.Write(catalogJSON)
	b.WriteString("\n\nStruktur JSON Output yang Diinginkan:\n")
	b.WriteString(`{
  "name": "Nama Motor Tanpa Brand",
  "brand_id": 1,
  "category_id": 2,
  "year_model": 2012,
  "engine_cc": 200,
  "low_price": 28000000,
  "up_price": 30000000,
  "desc": "Deskripsi singkat dan menarik tentang motor.",
  "colors": [1, 2],
  "features": [1, 2],
  "specifications": [
    { "spec_item_id": 2, "value": "Nilai spesifikasi yang akurat" }
  ]
}`)
	b.WriteString("\n\nInstruksi Penting:\n")
	b.WriteString("1. Isi semua field berdasarkan data yang paling akurat untuk model dan tahun yang ditentukan.\n")
	b.WriteString("2. Untuk name, hanya sertakan nama modelnya (contoh: \"Tiger Revo\"), bukan brand-nya.\n")
	b.WriteString("3. Jika sebuah item spesifikasi tidak berlaku, jangan sertakan item tersebut dalam array specifications.\n")
	b.WriteString("4. Jika warna atau fitur pabrikan tidak ada dalam daftar data master, jangan dimasukkan.\n")
	b.WriteString("5. Pastikan seluruh output Anda hanyalah kode JSON, dimulai dengan `{` dan diakhiri dengan `}`.\n\n")
	b.WriteString("Sekarang, proses permintaan untuk sepeda motor berikut:\n")
	b.WriteString(taskName)

	return b.String(), nil
}

type catalogEntry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toCatalogEntries[T any](rows []T, fn func(T) (uint, string)) []catalogEntry {
	entries := make([]catalogEntry, 0, len(rows))
	for _, row := range rows {
		id, name := fn(row)
		entries = append(entries, catalogEntry{ID: id, Name: name})
	}
	return entries
}
