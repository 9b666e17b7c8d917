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

var errInvalidBoardPayload = pkg.NewDomainErrorSimple("INVALID_BOARD_INPUT", "Invalid board payload", http.StatusBadRequest)

// BoardHandler serves the order kanban board: the column view and the
// drag-and-drop move transition.

type BoardHandler struct {
	board *usecase.OrderBoard
	store usecase.IOrderStore
}

func NewBoardHandler(board *usecase.OrderBoard, store usecase.IOrderStore) *BoardHandler {
	return &BoardHandler{board: board, store: store}
}

// GetBoard returns the columns with full records in board order.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	cols := h.board.Columns()

	out := make([]response.BoardColumnResponse, 0, len(entities.OrderStatuses))
	for _, st := range entities.OrderStatuses {
		col := response.BoardColumnResponse{Status: string(st), Orders: []response.OrderResponse{}}
		for _, id := range cols[st] {
			if o, ok := h.store.Get(id); ok {
				col.Orders = append(col.Orders, response.FromOrder(o))
			}
		}
		out = append(out, col)
	}
	c.JSON(http.StatusOK, out)
}

// MoveCard applies one drop transition and returns the refreshed board.
func (h *BoardHandler) MoveCard(c *gin.Context) {
	var payload request.BoardMoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBoardPayload.HTTPStatus, errInvalidBoardPayload.ToHTTPError())
		return
	}

	src := usecase.BoardPosition{Status: entities.OrderStatus(payload.Source.Status), Index: payload.Source.Index}
	var dst *usecase.BoardPosition
	if payload.Destination != nil {
		dst = &usecase.BoardPosition{Status: entities.OrderStatus(payload.Destination.Status), Index: payload.Destination.Index}
	}

	if err := h.board.Move(c.Request.Context(), src, dst); err != nil {
		log.Printf("[board][handler] move failed src=%s/%d err=%v", src.Status, src.Index, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.GetBoard(c)
}
