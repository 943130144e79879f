package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/loyaltyloop/loyalty-crm-be/internal/core/recommend"
)

// maxPDFSize bounds uploaded strategy documents (10 MB)
const maxPDFSize = 10 << 20

type KBHandler struct {
	kb *recommend.KnowledgeBase
}

func NewKBHandler(kb *recommend.KnowledgeBase) *KBHandler {
	return &KBHandler{kb: kb}
}

// DocumentRequest carries a plain-text strategy document
type DocumentRequest struct {
	Title    string `json:"title" example:"Estrategia otoño"`
	Content  string `json:"content"`
	Category string `json:"category" example:"camisas"`
}

// AddDocument godoc
// @Summary Add a strategy document
// @Description Indexes a plain-text document; its key points enrich future recommendations
// @Tags KnowledgeBase
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DocumentRequest true "Document"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /knowledge/documents [post]
func (h *KBHandler) AddDocument(c *fiber.Ctx) error {
	if _, err := ownerID(c); err != nil {
		return unauthorized(c)
	}

	var req DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "content is required",
		})
	}

	id := h.kb.AddDocument(req.Content, req.Title, req.Category)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Document indexed",
	})
}

// UploadPDF godoc
// @Summary Upload a strategy PDF
// @Description Extracts text from an uploaded PDF and indexes it for recommendations
// @Tags KnowledgeBase
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "PDF file (max 10 MB)"
// @Param category formData string false "Document category"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /knowledge/documents/pdf [post]
func (h *KBHandler) UploadPDF(c *fiber.Ctx) error {
	if _, err := ownerID(c); err != nil {
		return unauthorized(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	if fileHeader.Size > maxPDFSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file exceeds 10 MB limit",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read file",
		})
	}

	id, err := h.kb.AddPDF(data, c.FormValue("category"))
	if err != nil {
		if errors.Is(err, recommend.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "file is not a readable PDF",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to index document",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "PDF indexed",
	})
}

// ListDocuments godoc
// @Summary List indexed documents
// @Tags KnowledgeBase
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Success 200 {object} map[string]interface{}
// @Router /knowledge/documents [get]
func (h *KBHandler) ListDocuments(c *fiber.Ctx) error {
	if _, err := ownerID(c); err != nil {
		return unauthorized(c)
	}

	docs := h.kb.Documents(c.Query("category"))
	return c.JSON(fiber.Map{
		"documents": docs,
		"count":     len(docs),
	})
}
