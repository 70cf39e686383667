// internal/handlers/webhook_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/motorinci/motorinci-api/internal/config"
	"github.com/motorinci/motorinci-api/internal/middleware"
	"github.com/motorinci/motorinci-api/internal/utils"
)

func webhookTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewWebhookHandler(&config.Config{
		Webhook: config.WebhookConfig{Secret: secret},
	})
	r := gin.New()
	r.POST("/api/webhook/deploy", handler.Deploy)
	return r
}

func TestDeployAcceptsSignedPayload(t *testing.T) {
	r := webhookTestRouter("deploy-secret")

	payload := `{"ref":"refs/heads/main"}`
	signature := "sha256=" + utils.ComputeHMACSHA256([]byte(payload), "deploy-secret")

	req := httptest.NewRequest("POST", "/api/webhook/deploy", strings.NewReader(payload))
	req.Header.Set("X-Hub-Signature-256", signature)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Deployment triggered")
}

func TestDeployAcceptsSignedFormPayloadThroughOverride(t *testing.T) {
	r := webhookTestRouter("deploy-secret")
	h := middleware.MethodOverride(r)

	payload := "payload=" + url.QueryEscape(`{"ref":"refs/heads/main"}`)
	signature := "sha256=" + utils.ComputeHMACSHA256([]byte(payload), "deploy-secret")

	req := httptest.NewRequest("POST", "/api/webhook/deploy", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Hub-Signature-256", signature)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Deployment triggered")
}

func TestDeployRejectsBadSignature(t *testing.T) {
	r := webhookTestRouter("deploy-secret")

	req := httptest.NewRequest("POST", "/api/webhook/deploy", strings.NewReader(`{}`))
	req.Header.Set("X-Hub-Signature-256", "sha256=deadbeef")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeployRejectsMissingSignature(t *testing.T) {
	r := webhookTestRouter("deploy-secret")

	req := httptest.NewRequest("POST", "/api/webhook/deploy", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
