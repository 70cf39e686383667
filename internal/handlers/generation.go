// internal/handlers/generation.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/motorinci/motorinci-api/internal/ai"
	"github.com/motorinci/motorinci-api/internal/services"
	"github.com/motorinci/motorinci-api/internal/utils"
)

// GenerationHandler drives the AI-assisted catalog ingestion endpoints.
type GenerationHandler struct {
	ingestion *services.IngestionService
	discovery *services.ImageDiscoveryService
}

func NewGenerationHandler(ingestion *services.IngestionService, discovery *services.ImageDiscoveryService) *GenerationHandler {
	return &GenerationHandler{ingestion: ingestion, discovery: discovery}
}

// GenerateGemini consumes the next pending task through the Gemini provider.
func (h *GenerationHandler) GenerateGemini(c *gin.Context) {
	h.runIngestion(c, h.ingestion.GeminiGenerator())
}

// GenerateOpenRouter consumes the next pending task through an OpenRouter
// model picked by its registry id.
func (h *GenerationHandler) GenerateOpenRouter(c *gin.Context) {
	modelID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid id parameter")
		return
	}
	h.runIngestion(c, h.ingestion.OpenRouterGenerator(modelID))
}

func (h *GenerationHandler) runIngestion(c *gin.Context, gen ai.TextGenerator) {
	result, err := h.ingestion.Ingest(c.Request.Context(), gen)
	if err != nil {
		h.respondIngestError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci motor generated successfully", result)
}

func (h *GenerationHandler) respondIngestError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNoPendingTask) {
		utils.NotFoundResponse(c, "No pending generation task")
		return
	}

	var failure *services.ValidationFailure
	if errors.As(err, &failure) {
		utils.ValidationErrorResponse(c, failure.Errors)
		return
	}

	var ingestErr *services.IngestError
	if errors.As(err, &ingestErr) {
		logrus.WithError(ingestErr).WithField("stage", ingestErr.Stage).Error("Generation failed")
		utils.ErrorResponse(c, 500, "Generation failed", gin.H{
			"stage":     ingestErr.Stage,
			"raw_reply": ingestErr.RawReply,
		})
		return
	}

	respondServiceError(c, err)
}

// Generate persists a manually supplied payload, same rules as the AI path.
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req services.GeneratedMotorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	motor, err := h.ingestion.GenerateFromPayload(&req)
	if err != nil {
		h.respondIngestError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci motor generated successfully", motor)
}

type freePromptRequest struct {
	Prompt string `json:"prompt" form:"prompt"`
}

// FreePrompt forwards an arbitrary prompt to a random OpenRouter model.
func (h *GenerationHandler) FreePrompt(c *gin.Context) {
	var req freePromptRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	reply, err := h.ingestion.FreePrompt(c.Request.Context(), h.ingestion.RandomGenerator(), req.Prompt)
	if err != nil {
		h.respondIngestError(c, err)
		return
	}
	utils.SuccessResponse(c, "Prompt processed successfully", gin.H{"reply": reply})
}

type enqueueTaskRequest struct {
	Name string `json:"name" form:"name"`
}

// EnqueueTask queues a motorcycle name for later ingestion.
func (h *GenerationHandler) EnqueueTask(c *gin.Context) {
	var req enqueueTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request payload")
		return
	}
	task, err := h.ingestion.EnqueueTask(req.Name)
	if err != nil {
		h.respondIngestError(c, err)
		return
	}
	utils.CreatedResponse(c, "Motorinci generation task created successfully", task)
}

// DiscoverImages finds and stores gallery images for the next motor without
// any.
func (h *GenerationHandler) DiscoverImages(c *gin.Context) {
	result, err := h.discovery.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoMotorWithoutImages) {
			utils.SuccessResponse(c, "No motor without images to process", nil)
			return
		}
		var searchErr *services.SearchError
		if errors.As(err, &searchErr) {
			logrus.WithError(searchErr).Error("Image search failed")
			utils.BadGatewayResponse(c, "Image search failed")
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, "Motorinci motor images processed successfully", result)
}
