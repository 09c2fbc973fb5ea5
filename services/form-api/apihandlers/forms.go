package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	mw "github.com/Nithin0620/DynoForm/pkg/apihelpers/middlewares"
	"github.com/Nithin0620/DynoForm/pkg/forms"
	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
	jwthandling "github.com/Nithin0620/DynoForm/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddFormsAPI(rg *gin.RouterGroup) {
	formsGroup := rg.Group("/forms")
	formsGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	{
		formsGroup.POST("", mw.RequirePayload(), h.createForm)
		formsGroup.GET("", h.listForms)
		formsGroup.GET("/:formID", h.getForm)
	}
}

func (h *HttpEndpoints) createForm(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	var req struct {
		AirtableBaseID  string               `json:"airtableBaseId"`
		AirtableTableID string               `json:"airtableTableId"`
		Questions       []formTypes.Question `json:"questions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AirtableBaseID == "" || req.AirtableTableID == "" || len(req.Questions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "airtableBaseId, airtableTableId and questions are required"})
		return
	}

	if err := forms.ValidateFormQuestions(req.Questions); err != nil {
		slog.Warn("invalid form definition", slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(token.Subject)
	if err != nil {
		slog.Error("invalid user id in token", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	form, err := h.formsDBConn.CreateFormDefinition(formTypes.FormDefinition{
		Owner:           ownerID,
		AirtableBaseID:  req.AirtableBaseID,
		AirtableTableID: req.AirtableTableID,
		Questions:       req.Questions,
	})
	if err != nil {
		slog.Error("failed to create form", slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create form"})
		return
	}

	slog.Info("form created", slog.String("userID", token.Subject), slog.String("formID", form.ID.Hex()))

	c.JSON(http.StatusCreated, gin.H{
		"formId": form.ID.Hex(),
		"form":   form,
	})
}

func (h *HttpEndpoints) listForms(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	formList, err := h.formsDBConn.GetFormDefinitionsByOwner(token.Subject)
	if err != nil {
		slog.Error("failed to list forms", slog.String("userID", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list forms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"forms": formList,
		"count": len(formList),
	})
}

func (h *HttpEndpoints) getForm(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	formID := c.Param("formID")

	form, err := h.formsDBConn.GetFormDefinitionByID(formID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "form not found"})
			return
		}
		slog.Error("failed to fetch form", slog.String("formID", formID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch form"})
		return
	}

	// forms are visible to their owner only
	if form.Owner.Hex() != token.Subject {
		slog.Warn("form access denied", slog.String("userID", token.Subject), slog.String("formID", formID))
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only access forms you created"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": form})
}
