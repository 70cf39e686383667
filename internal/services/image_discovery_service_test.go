// internal/services/image_discovery_service_test.go
package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/motorinci/motorinci-api/internal/models"
)

type stubSearcher struct {
	links []string
	err   error

	queries []string
}

func (s *stubSearcher) SearchImages(_ context.Context, query string) ([]string, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	return s.links, nil
}

// imageServer serves fake downloads keyed by path.
func imageServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))

		switch r.URL.Path {
		case "/a.png", "/b.png", "/c.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("png-bytes"))
		case "/page.html":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html></html>"))
		case "/weird.tiff":
			w.Header().Set("Content-Type", "image/tiff")
			w.Write([]byte("tiff-bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func discoveryFixture(t *testing.T, searcher ImageSearcher) (*ImageDiscoveryService, *gorm.DB, models.Motor) {
	t.Helper()

	db := newTestDB(t)
	brand, category := seedCatalog(t, db)
	motor := seedMotor(t, db, brand, category, "CBR150R")
	svc := NewImageDiscoveryService(db, newTestStorage(t), searcher, newTestConfig(t))
	return svc, db, motor
}

func TestDiscoveryStopsAfterTwoSaves(t *testing.T) {
	server := imageServer(t)
	searcher := &stubSearcher{links: []string{
		server.URL + "/page.html",
		server.URL + "/a.png",
		server.URL + "/b.png",
		server.URL + "/c.png",
	}}
	svc, db, motor := discoveryFixture(t, searcher)

	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, motor.ID, result.MotorID)
	assert.Equal(t, 2, result.Saved)

	// Query embeds brand, name and year.
	require.Len(t, searcher.queries, 1)
	assert.Equal(t, "Honda CBR150R tahun 2023 white background", searcher.queries[0])

	// The html page was skipped, c.png never attempted.
	require.Len(t, result.Attempts, 3)
	assert.Equal(t, "skipped", result.Attempts[0].Status)
	assert.Equal(t, "saved", result.Attempts[1].Status)
	assert.Equal(t, "saved", result.Attempts[2].Status)

	var images []models.MotorImage
	require.NoError(t, db.Where("motor_id = ?", motor.ID).Find(&images).Error)
	assert.Len(t, images, 2)
	for _, img := range images {
		assert.Contains(t, img.Image, PrefixMotorGallery)
	}

	var reloaded models.Motor
	require.NoError(t, db.First(&reloaded, motor.ID).Error)
	assert.Nil(t, reloaded.ImageFetchFailedAt)
}

func TestDiscoveryMarksMotorWhenNothingSaved(t *testing.T) {
	server := imageServer(t)
	searcher := &stubSearcher{links: []string{
		server.URL + "/page.html",
		server.URL + "/weird.tiff",
		server.URL + "/missing.png",
	}}
	svc, db, motor := discoveryFixture(t, searcher)

	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Saved)

	var reloaded models.Motor
	require.NoError(t, db.First(&reloaded, motor.ID).Error)
	assert.NotNil(t, reloaded.ImageFetchFailedAt)

	// A marked motor is skipped on the next run.
	_, err = svc.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoMotorWithoutImages)
}

func TestDiscoverySkipsMotorsWithImages(t *testing.T) {
	searcher := &stubSearcher{}
	svc, db, motor := discoveryFixture(t, searcher)

	require.NoError(t, db.Create(&models.MotorImage{MotorID: motor.ID, Image: "existing.png"}).Error)

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoMotorWithoutImages)
	assert.Empty(t, searcher.queries)
}

func TestDiscoverySearchFailure(t *testing.T) {
	searcher := &stubSearcher{err: assert.AnError}
	svc, db, motor := discoveryFixture(t, searcher)

	_, err := svc.Run(context.Background())
	var searchErr *SearchError
	require.ErrorAs(t, err, &searchErr)

	// A search failure does not mark the motor.
	var reloaded models.Motor
	require.NoError(t, db.First(&reloaded, motor.ID).Error)
	assert.Nil(t, reloaded.ImageFetchFailedAt)
}
