package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"burrito_orders/internal/models"
	"burrito_orders/internal/services"
	"burrito_orders/pkg/sheets"
)

type OrderHandler struct {
	orderService services.OrderService
	logger       *zap.Logger
}

func NewOrderHandler(orderService services.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, logger: logger}
}

// SubmitOrder handles POST /api/orders.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var order models.OrderSubmission
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	message, err := h.orderService.SubmitOrder(c.Request.Context(), &order)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// respondError maps service failures to client responses. Backend error
// detail is logged, not returned; validation detail describes the client's
// own input and is safe to echo. Worksheet lookups may list available
// worksheet titles for diagnostics.
func (h *OrderHandler) respondError(c *gin.Context, err error) {
	kind := services.KindOf(err)

	if kind == services.KindValidation {
		var fieldErr *models.FieldError
		body := gin.H{"error": kind.ClientMessage()}
		if errors.As(err, &fieldErr) {
			body["details"] = fieldErr.Error()
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	h.logger.Error("order submission failed",
		zap.Int("kind", int(kind)),
		zap.Error(err))

	body := gin.H{"error": kind.ClientMessage()}
	if kind == services.KindSheetNotFound {
		var wsErr *sheets.WorksheetError
		if errors.As(err, &wsErr) && len(wsErr.Available) > 0 {
			body["details"] = "available worksheets: " + strings.Join(wsErr.Available, ", ")
		}
	}
	c.JSON(http.StatusInternalServerError, body)
}

// Healthz handles GET /healthz.
func (h *OrderHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
