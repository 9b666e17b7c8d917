package handlers

import (
	"log"
	"net/http"

	request "salesdesk/internal/adapter/http/dto/request"
	response "salesdesk/internal/adapter/http/dto/response"
	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase"
	"salesdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errQuoteNotFound       = pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	errInvalidQuoteStage   = pkg.NewDomainErrorSimple("INVALID_QUOTE_STAGE", "Invalid quote stage", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quotes: list/detail reads, add,
// draft save, partial update, remove, stage changes and the pipeline view.

type QuoteHandler struct {
	store usecase.IQuoteStore
}

func NewQuoteHandler(store usecase.IQuoteStore) *QuoteHandler {
	return &QuoteHandler{store: store}
}

// ListQuotes returns the collection, optionally filtered by the q query
// (case-insensitive substring on the customer name).
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes := usecase.FilterQuotes(h.store.List(), c.Query("q"))
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetPipeline returns the stage-grouped kanban view of the filtered
// collection.
func (h *QuoteHandler) GetPipeline(c *gin.Context) {
	quotes := usecase.FilterQuotes(h.store.List(), c.Query("q"))
	c.JSON(http.StatusOK, response.FromQuoteBuckets(usecase.GroupQuotesByStage(quotes)))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(errQuoteNotFound.HTTPStatus, errQuoteNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// CreateQuote adds a quote from a caller-supplied partial; the store fills
// defaults and assigns the id.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.store.Add(c.Request.Context(), payload.ToPatch(""))
	if err != nil {
		log.Printf("[quote][handler] create failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// SaveQuote is the draft-editor save: the full edited draft replaces all
// top-level fields of the stored record.
func (h *QuoteHandler) SaveQuote(c *gin.Context) {
	id := c.Param("id")

	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	ed := usecase.NewQuoteEditor(h.store)
	if !ed.Begin(id) {
		c.JSON(errQuoteNotFound.HTTPStatus, errQuoteNotFound.ToHTTPError())
		return
	}
	ed.Apply(payload.ToPatch(id))
	if err := ed.Save(c.Request.Context()); err != nil {
		log.Printf("[quote][handler] save failed id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, _ := h.store.Get(id)
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// PatchQuote merges the supplied fields into the record. An unknown id is a
// silent no-op, mirroring the store contract.
func (h *QuoteHandler) PatchQuote(c *gin.Context) {
	id := c.Param("id")

	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if err := h.store.Update(c.Request.Context(), payload.ToPatch(id)); err != nil {
		log.Printf("[quote][handler] patch failed id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Remove(c.Request.Context(), id); err != nil {
		log.Printf("[quote][handler] delete failed id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeStage moves a quote along the pipeline. Closing stages settle the
// quote status here, at the caller, not inside the store: Closed Won
// approves, Closed Lost rejects.
func (h *QuoteHandler) ChangeStage(c *gin.Context) {
	id := c.Param("id")

	var payload request.QuoteStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	stage := entities.QuoteStage(payload.Stage)
	if !entities.ValidQuoteStage(stage) {
		c.JSON(errInvalidQuoteStage.HTTPStatus, errInvalidQuoteStage.ToHTTPError())
		return
	}
	if _, ok := h.store.Get(id); !ok {
		c.JSON(errQuoteNotFound.HTTPStatus, errQuoteNotFound.ToHTTPError())
		return
	}

	patch := entities.QuotePatch{ID: id, Stage: &stage}
	switch stage {
	case entities.QuoteStageClosedWon:
		status := entities.QuoteStatusApproved
		patch.Status = &status
	case entities.QuoteStageClosedLost:
		status := entities.QuoteStatusRejected
		patch.Status = &status
	}

	if err := h.store.Update(c.Request.Context(), patch); err != nil {
		log.Printf("[quote][handler] stage change failed id=%s stage=%s err=%v", id, stage, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, _ := h.store.Get(id)
	c.JSON(http.StatusOK, response.FromQuote(q))
}
