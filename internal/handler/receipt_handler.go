package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/domain"
	"github.com/Nvisionfilms/Prenjulum-Store/internal/service"
)

type ReceiptHandler struct {
	notifications *service.NotificationService
	logger        *zap.Logger
}

func NewReceiptHandler(notifications *service.NotificationService, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		notifications: notifications,
		logger:        logger,
	}
}

// SendReceipt reconciles stock (once per order) and sends the receipt
// emails. Email failures never fail the request; the purchase already
// happened.
func (h *ReceiptHandler) SendReceipt(c *gin.Context) {
	var order domain.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	result := h.notifications.Dispatch(c.Request.Context(), order)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inventory updated and emails sent",
		"detail":  result,
	})
}
