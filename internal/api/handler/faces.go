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

// FaceRegistry interface for the mutable known-face registry
type FaceRegistry interface {
	Add(ctx context.Context, scope, id string, image []byte) error
	Remove(ctx context.Context, scope, id string) error
	List(ctx context.Context, scope string) ([]string, error)
}

// FacesHandler handles known-face maintenance requests
type FacesHandler struct {
	registry FaceRegistry
	logger   *slog.Logger
}

// NewFacesHandler creates a new FacesHandler instance
func NewFacesHandler(registry FaceRegistry, logger *slog.Logger) *FacesHandler {
	return &FacesHandler{
		registry: registry,
		logger:   logger,
	}
}

// ListResponse response for the face listing endpoint
type ListResponse struct {
	Faces []string `json:"faces"`
}

// RegisterResponse response for the face registration endpoint
type RegisterResponse struct {
	ID string `json:"id"`
}

// List GET /v1/faces - list registered identifiers
func (h *FacesHandler) List(c *fiber.Ctx) error {
	ids, err := h.registry.List(c.Context(), c.Query("scope"))
	if err != nil {
		return err
	}

	if ids == nil {
		ids = []string{}
	}

	return c.JSON(ListResponse{Faces: ids})
}

// Register POST /v1/faces - register or replace a known face
func (h *FacesHandler) Register(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.FormValue("id"))
	if id == "" {
		return domain.ErrValidationFailed.WithError(errors.New("id is required"))
	}

	imageBytes, err := extractAndValidateImage(c)
	if err != nil {
		return fmt.Errorf("register face: %w", err)
	}

	if err := h.registry.Add(c.Context(), c.FormValue("scope"), id, imageBytes); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(RegisterResponse{ID: id})
}

// Delete DELETE /v1/faces/:id - remove a known face
func (h *FacesHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return domain.ErrValidationFailed.WithError(errors.New("id is required"))
	}

	if err := h.registry.Remove(c.Context(), c.Query("scope"), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
