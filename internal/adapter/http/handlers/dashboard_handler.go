package handlers

import (
	"net/http"

	request "salesdesk/internal/adapter/http/dto/request"
	"salesdesk/internal/usecase"
	"salesdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWidgetPayload = pkg.NewDomainErrorSimple("INVALID_WIDGET_INPUT", "Invalid widget payload", http.StatusBadRequest)

// DashboardHandler serves the session-only dashboard widget ordering.

type DashboardHandler struct {
	widgets *usecase.WidgetBoard
}

func NewDashboardHandler(widgets *usecase.WidgetBoard) *DashboardHandler {
	return &DashboardHandler{widgets: widgets}
}

func (h *DashboardHandler) ListWidgets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"widgets": h.widgets.Widgets()})
}

// MoveWidget splices a widget to a new position. Out-of-range moves are
// no-ops, mirroring a cancelled drag.
func (h *DashboardHandler) MoveWidget(c *gin.Context) {
	var payload request.WidgetMoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWidgetPayload.HTTPStatus, errInvalidWidgetPayload.ToHTTPError())
		return
	}

	h.widgets.Move(payload.Source, payload.Destination)
	c.JSON(http.StatusOK, gin.H{"widgets": h.widgets.Widgets()})
}
