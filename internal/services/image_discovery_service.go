// internal/services/image_discovery_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/config"
	"github.com/motorinci/motorinci-api/internal/models"
)

// ErrNoMotorWithoutImages signals that every motor already has gallery images
// or was already marked failed.
var ErrNoMotorWithoutImages = errors.New("no motor without images to process")

// SearchError wraps an upstream image search failure.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("image search failed: %v", e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

const (
	downloadTimeout = 15 * time.Second
	maxSavedImages  = 2
)

// contentTypeExt maps accepted image content types to storage extensions.
var contentTypeExt = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type ImageDiscoveryService struct {
	db       *gorm.DB
	storage  *StorageService
	searcher ImageSearcher
	client   *http.Client
	ua       string
}

// ImageAttempt records the outcome of one candidate URL.
type ImageAttempt struct {
	URL    string `json:"url"`
	Status string `json:"status"` // saved, skipped, failed
	Reason string `json:"reason,omitempty"`
}

// DiscoveryResult summarizes one discovery run.
type DiscoveryResult struct {
	MotorID  uint           `json:"motor_id"`
	Motor    string         `json:"motor"`
	Query    string         `json:"query"`
	Saved    int            `json:"saved"`
	Attempts []ImageAttempt `json:"attempts"`
}

func NewImageDiscoveryService(db *gorm.DB, storage *StorageService, searcher ImageSearcher, cfg *config.Config) *ImageDiscoveryService {
	return &ImageDiscoveryService{
		db:       db,
		storage:  storage,
		searcher: searcher,
		client:   &http.Client{Timeout: downloadTimeout},
		ua:       cfg.Google.DownloadUA,
	}
}

// Run picks the next motor lacking gallery images, searches the web for
// product shots and stores up to two of them. A run saving zero images stamps
// the motor so later runs skip it.
func (s *ImageDiscoveryService) Run(ctx context.Context) (*DiscoveryResult, error) {
	motor, err := s.nextMotor()
	if err != nil {
		return nil, err
	}

	brandName := ""
	if motor.Brand != nil {
		brandName = motor.Brand.Name
	}
	query := fmt.Sprintf("%s %s tahun %d white background", brandName, motor.Name, motor.YearModel)

	links, err := s.searcher.SearchImages(ctx, query)
	if err != nil {
		return nil, &SearchError{Err: err}
	}

	result := &DiscoveryResult{
		MotorID: motor.ID,
		Motor:   motor.Name,
		Query:   query,
	}

	for _, link := range links {
		if result.Saved >= maxSavedImages {
			break
		}
		attempt := s.fetchAndStore(ctx, motor, link, result.Saved)
		result.Attempts = append(result.Attempts, attempt)
		if attempt.Status == "saved" {
			result.Saved++
		}
	}

	if result.Saved == 0 {
		now := time.Now()
		if err := s.db.Model(&models.Motor{}).
			Where("id = ?", motor.ID).
			Update("image_fetch_failed_at", now).Error; err != nil {
			return nil, fmt.Errorf("failed to mark motor: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"motor_id": motor.ID,
		"query":    query,
		"saved":    result.Saved,
	}).Info("Image discovery run finished")

	return result, nil
}

func (s *ImageDiscoveryService) nextMotor() (*models.Motor, error) {
	var motor models.Motor
	err := s.db.Preload("Brand").
		Where("image_fetch_failed_at IS NULL").
		Where("id NOT IN (?)", s.db.Model(&models.MotorImage{}).Select("motor_id")).
		Order("id ASC").
		First(&motor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoMotorWithoutImages
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &motor, nil
}

func (s *ImageDiscoveryService) fetchAndStore(ctx context.Context, motor *models.Motor, link string, order int) ImageAttempt {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return ImageAttempt{URL: link, Status: "failed", Reason: "invalid url"}
	}
	req.Header.Set("User-Agent", s.ua)

	resp, err := s.client.Do(req)
	if err != nil {
		return ImageAttempt{URL: link, Status: "failed", Reason: "download failed"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ImageAttempt{URL: link, Status: "failed", Reason: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return ImageAttempt{URL: link, Status: "skipped", Reason: "not an image"}
	}
	ext, ok := contentTypeExt[strings.TrimSpace(strings.Split(contentType, ";")[0])]
	if !ok {
		return ImageAttempt{URL: link, Status: "skipped", Reason: "unsupported image type"}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ImageAttempt{URL: link, Status: "failed", Reason: "read failed"}
	}

	key := s.storage.GenerateKey(PrefixMotorGallery, "."+ext)
	if _, err := s.storage.SaveBytes(data, key, contentType); err != nil {
		return ImageAttempt{URL: link, Status: "failed", Reason: "store failed"}
	}

	desc := fmt.Sprintf("%s official image", motor.Name)
	image := models.MotorImage{
		MotorID: motor.ID,
		Image:   key,
		Desc:    &desc,
		Order:   order,
	}
	if err := s.db.Create(&image).Error; err != nil {
		s.storage.DeleteFile(key)
		return ImageAttempt{URL: link, Status: "failed", Reason: "database error"}
	}

	return ImageAttempt{URL: link, Status: "saved"}
}
