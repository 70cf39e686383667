// internal/handlers/webhook.go
package handlers

import (
	"io"
	"os/exec"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/motorinci/motorinci-api/internal/config"
	"github.com/motorinci/motorinci-api/internal/utils"
)

// WebhookHandler verifies and acts on deploy webhooks.
type WebhookHandler struct {
	cfg *config.Config
}

func NewWebhookHandler(cfg *config.Config) *WebhookHandler {
	return &WebhookHandler{cfg: cfg}
}

// Deploy validates the HMAC signature and triggers the deploy script.
func (h *WebhookHandler) Deploy(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.BadRequestResponse(c, "Unable to read request body")
		return
	}

	signature := c.GetHeader("X-Hub-Signature-256")
	if !utils.ValidateHMACSignature(body, h.cfg.Webhook.Secret, signature) {
		logrus.WithField("ip", c.ClientIP()).Warn("Deploy webhook signature mismatch")
		utils.ForbiddenResponse(c, "Invalid signature")
		return
	}

	if script := h.cfg.Webhook.DeployScript; script != "" {
		go func() {
			out, err := exec.Command("/bin/sh", script).CombinedOutput()
			if err != nil {
				logrus.WithError(err).WithField("output", string(out)).Error("Deploy script failed")
				return
			}
			logrus.Info("Deploy script finished")
		}()
	}

	utils.SuccessResponse(c, "Deployment triggered", nil)
}
