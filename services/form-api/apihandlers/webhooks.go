package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	mw "github.com/Nithin0620/DynoForm/pkg/apihelpers/middlewares"
	"github.com/Nithin0620/DynoForm/pkg/forms"
)

func (h *HttpEndpoints) AddWebhooksAPI(rg *gin.RouterGroup) {
	webhooksGroup := rg.Group("/webhooks")
	{
		webhooksGroup.POST("/airtable", mw.RequirePayload(), h.handleAirtableWebhook)
		webhooksGroup.GET("/airtable/test", h.testWebhook)
	}
}

// handleAirtableWebhook reconciles one Airtable change notification. The
// delivery is always answered with 200 so Airtable does not retry a
// notification whose effects may have partially applied; failures are
// reported in the body and logged.
func (h *HttpEndpoints) handleAirtableWebhook(c *gin.Context) {
	var req struct {
		Webhook *forms.WebhookEvent `json:"webhook"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind webhook payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Webhook == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "webhook object is required"})
		return
	}

	if err := forms.ProcessWebhookEvent(*req.Webhook); err != nil {
		slog.Error("webhook processing failed", slog.String("baseId", req.Webhook.BaseID), slog.String("error", err.Error()))
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   "webhook processing failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "webhook processed successfully",
	})
}

func (h *HttpEndpoints) testWebhook(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "webhook endpoint is accessible",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
