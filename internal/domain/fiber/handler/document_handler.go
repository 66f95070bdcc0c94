package handler

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/dto"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/middleware"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/repository"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/usecase"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/util"
)

const maxUploadSize = 10 * 1024 * 1024

type DocumentHandler struct {
	upload      *usecase.UploadUsecase
	processing  *usecase.ProcessingUsecase
	comparison  *usecase.ComparisonUsecase
	docRepo     *repository.CandidateDocumentRepository
	catalog     *repository.CatalogRepository
	comparisons *repository.ComparisonRepository
}

func NewDocumentHandler(upload *usecase.UploadUsecase, processing *usecase.ProcessingUsecase, comparison *usecase.ComparisonUsecase, docRepo *repository.CandidateDocumentRepository, catalog *repository.CatalogRepository, comparisons *repository.ComparisonRepository) *DocumentHandler {
	return &DocumentHandler{upload: upload, processing: processing, comparison: comparison, docRepo: docRepo, catalog: catalog, comparisons: comparisons}
}

func (h *DocumentHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/candidates/:id/documents", middleware.RateLimiter(10, 1*time.Minute), h.Upload)
	app.Get("/candidates/:id/comparison", h.Comparison)
	app.Get("/candidates/:id/comparison/history", h.ComparisonHistory)
	app.Get("/documents/:id", h.DocumentStatus)
	app.Post("/queue/process", h.ProcessQueue)
	app.Get("/catalog", h.Catalog)
	app.Get("/catalog/:id", h.CatalogEntry)
}

func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	candidateID := c.Params("id")

	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file is required",
		}, err)
	}
	if file.Size > maxUploadSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file size is too large (max 10MB)",
		})
	}

	src, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read uploaded file",
		}, err)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot read uploaded file",
		}, err)
	}

	doc, err := h.upload.Submit(c.Context(), candidateID, file.Filename, file.Header.Get("Content-Type"), data)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit document",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusAccepted,
		Message: "document submitted for processing",
		Data:    fiber.Map{"id": doc.ID, "status": doc.Status},
	})
}

func (h *DocumentHandler) DocumentStatus(c *fiber.Ctx) error {
	doc, err := h.docRepo.FindByID(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "document not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "document status",
		Data: dto.DocumentStatusDTO{
			ID:           doc.ID,
			CandidateID:  doc.CandidateID,
			Name:         doc.Name,
			FileName:     doc.FileName,
			Status:       doc.Status,
			StatusDetail: doc.StatusDetail,
			CreatedAt:    doc.CreatedAt,
			UpdatedAt:    doc.UpdatedAt,
		},
	})
}

func (h *DocumentHandler) Comparison(c *fiber.Ctx) error {
	candidateID := c.Params("id")
	matrixID := c.Query("matrix_id")
	if matrixID == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "matrix_id is required",
		})
	}

	summary, err := h.comparison.Compare(c.Context(), candidateID, matrixID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to compute comparison",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "comparison computed",
		Data:    summary,
	})
}

func (h *DocumentHandler) ProcessQueue(c *fiber.Ctx) error {
	result, err := h.processing.ProcessNext(c.Context())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "queue processing failed",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "queue drained",
		Data:    result,
	})
}

// ComparisonHistory returns the persisted result rows for a candidate,
// most recent first, without recomputing anything.
func (h *DocumentHandler) ComparisonHistory(c *fiber.Ctx) error {
	rows, err := h.comparisons.ListByCandidate(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list comparison results",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "comparison results",
		Data:    rows,
	})
}

func (h *DocumentHandler) Catalog(c *fiber.Ctx) error {
	entries, err := h.catalog.List()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list catalog",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "catalog entries",
		Data:    entries,
	})
}

func (h *DocumentHandler) CatalogEntry(c *fiber.Ctx) error {
	entry, err := h.catalog.FindByID(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "catalog entry not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "catalog entry",
		Data:    entry,
	})
}
