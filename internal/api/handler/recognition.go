package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gianca04/face-recognition/internal/domain"
)

// RecognitionService interface for the recognition pipeline
type RecognitionService interface {
	Recognize(ctx context.Context, contextID string, image []byte) (*domain.Recognition, error)
	Encode(ctx context.Context, image []byte) (domain.Embedding, error)
}

// RecognitionHandler handles recognition and encoding requests
type RecognitionHandler struct {
	service RecognitionService
	logger  *slog.Logger
}

// NewRecognitionHandler creates a new RecognitionHandler instance
func NewRecognitionHandler(service RecognitionService, logger *slog.Logger) *RecognitionHandler {
	return &RecognitionHandler{
		service: service,
		logger:  logger,
	}
}

// EncodingResponse response for encoding endpoint
type EncodingResponse struct {
	Encoding domain.Embedding `json:"encoding"`
}

// Recognize POST /v1/recognize - identify known faces in a capture
func (h *RecognitionHandler) Recognize(c *fiber.Ctx) error {
	contextID := strings.TrimSpace(c.FormValue("context_id"))
	if contextID == "" {
		return domain.ErrValidationFailed.WithError(errors.New("context_id is required"))
	}

	imageBytes, err := extractAndValidateImage(c)
	if err != nil {
		return fmt.Errorf("recognize: %w", err)
	}

	recognition, err := h.service.Recognize(c.Context(), contextID, imageBytes)
	if err != nil {
		return err
	}

	return c.JSON(recognition)
}

// Encode POST /v1/encoding - compute the encoding of a single-face image
func (h *RecognitionHandler) Encode(c *fiber.Ctx) error {
	imageBytes, err := extractAndValidateImage(c)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	encoding, err := h.service.Encode(c.Context(), imageBytes)
	if err != nil {
		return err
	}

	return c.JSON(EncodingResponse{Encoding: encoding})
}
