package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	request "salesdesk/internal/adapter/http/dto/request"
	response "salesdesk/internal/adapter/http/dto/response"
	"salesdesk/internal/usecase"
	"salesdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errOrderNotFound       = pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
)

// OrderHandler handles HTTP requests for orders: list/detail, add, draft
// save, partial update, remove, the revenue chart and gateway payments.

type OrderHandler struct {
	store    usecase.IOrderStore
	payments usecase.IOrderPaymentUseCase
}

func NewOrderHandler(store usecase.IOrderStore, payments usecase.IOrderPaymentUseCase) *OrderHandler {
	return &OrderHandler{store: store, payments: payments}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders := usecase.FilterOrders(h.store.List(), c.Query("q"))
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(errOrderNotFound.HTTPStatus, errOrderNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.store.Add(c.Request.Context(), payload.ToPatch(""))
	if err != nil {
		log.Printf("[order][handler] create failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

// SaveOrder is the draft-editor save: the full edited draft replaces all
// top-level fields of the stored record.
func (h *OrderHandler) SaveOrder(c *gin.Context) {
	id := c.Param("id")

	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	ed := usecase.NewOrderEditor(h.store)
	if !ed.Begin(id) {
		c.JSON(errOrderNotFound.HTTPStatus, errOrderNotFound.ToHTTPError())
		return
	}
	ed.Apply(payload.ToPatch(id))
	if err := ed.Save(c.Request.Context()); err != nil {
		log.Printf("[order][handler] save failed id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	o, _ := h.store.Get(id)
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) PatchOrder(c *gin.Context) {
	id := c.Param("id")

	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if err := h.store.Update(c.Request.Context(), payload.ToPatch(id)); err != nil {
		log.Printf("[order][handler] patch failed id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Remove(c.Request.Context(), id); err != nil {
		log.Printf("[order][handler] delete failed id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetChart returns per-status count/total/average over the filtered
// collection.
func (h *OrderHandler) GetChart(c *gin.Context) {
	orders := usecase.FilterOrders(h.store.List(), c.Query("q"))
	c.JSON(http.StatusOK, response.FromStatusMetrics(usecase.AggregateOrdersByStatus(orders)))
}

// PayOrder charges an order through the payment gateway and marks it paid.
func (h *OrderHandler) PayOrder(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] pay start order_id=%s", id)

	payload, err := readPaymentPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload order_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	o, err := h.payments.Pay(c.Request.Context(), id, payload)
	if err != nil {
		log.Printf("[payment][handler] pay failed order_id=%s err=%v", id, err)
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pay success order_id=%s payment=%s", id, o.Payment)

	c.JSON(http.StatusOK, response.FromOrder(o))
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(body) {
		return nil, errors.New("body is not valid json")
	}
	return body, nil
}

func mapOrderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAUTHORIZED", "Payment gateway unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_BAD_REQUEST", "Payment gateway rejected the request", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
