package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Nithin0620/DynoForm/pkg/airtable"
	"github.com/Nithin0620/DynoForm/pkg/apihelpers"
	mw "github.com/Nithin0620/DynoForm/pkg/apihelpers/middlewares"
	"github.com/Nithin0620/DynoForm/pkg/forms"
	formTypes "github.com/Nithin0620/DynoForm/pkg/forms/types"
	jwthandling "github.com/Nithin0620/DynoForm/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddResponsesAPI(rg *gin.RouterGroup) {
	// submissions are public, the form link is the only requirement
	rg.POST("/forms/:formID/submit", mw.RequirePayload(), h.submitForm)

	rg.GET("/forms/:formID/responses", mw.GetAndValidateUserJWT(h.tokenSignKey), h.listFormResponses)
	rg.GET("/responses/:responseID", mw.GetAndValidateUserJWT(h.tokenSignKey), h.getResponse)
}

func (h *HttpEndpoints) submitForm(c *gin.Context) {
	formID := c.Param("formID")

	var req struct {
		Answers map[string]interface{} `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Answers == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answers object is required"})
		return
	}

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

	formOwner, err := h.userDBConn.GetUserByID(form.Owner.Hex())
	if err != nil {
		slog.Error("form owner not found", slog.String("formID", formID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "form owner not found"})
		return
	}

	fieldValues, validationErrors := forms.ProcessSubmission(form, req.Answers)
	if len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": validationErrors,
		})
		return
	}

	// the local mirror is only written after the Airtable record exists
	client := airtable.NewClient(formOwner.AccessToken, h.airtableClientConfig)
	record, err := client.CreateRecord(form.AirtableBaseID, form.AirtableTableID, fieldValues)
	if err != nil {
		slog.Error("failed to create Airtable record", slog.String("formID", formID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save to Airtable"})
		return
	}

	response, err := h.formsDBConn.CreateFormResponse(formTypes.FormResponse{
		FormID:           form.ID,
		AirtableRecordID: record.ID,
		Answers:          req.Answers,
	})
	if err != nil {
		slog.Error("failed to persist form response", slog.String("formID", formID), slog.String("recordID", record.ID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save response"})
		return
	}

	slog.Info("form submitted", slog.String("formID", formID), slog.String("responseID", response.ID.Hex()), slog.String("recordID", record.ID))

	c.JSON(http.StatusCreated, gin.H{
		"message":          "form submitted successfully",
		"responseId":       response.ID.Hex(),
		"airtableRecordId": record.ID,
		"response":         response,
	})
}

func (h *HttpEndpoints) listFormResponses(c *gin.Context) {
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

	if form.Owner.Hex() != token.Subject {
		slog.Warn("response access denied", slog.String("userID", token.Subject), slog.String("formID", formID))
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only view responses to forms you created"})
		return
	}

	includeDeleted := c.DefaultQuery("includeDeleted", "false") == "true"

	paginatedQuery, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	responses, paginationInfo, err := h.formsDBConn.GetFormResponses(formID, includeDeleted, paginatedQuery.Page, paginatedQuery.Limit)
	if err != nil {
		slog.Error("failed to list responses", slog.String("formID", formID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list responses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"formId":         formID,
		"responses":      responses,
		"pagination":     paginationInfo,
		"includeDeleted": includeDeleted,
	})
}

func (h *HttpEndpoints) getResponse(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.UserClaims)

	responseID := c.Param("responseID")

	response, err := h.formsDBConn.GetFormResponseByID(responseID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "response not found"})
			return
		}
		slog.Error("failed to fetch response", slog.String("responseID", responseID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch response"})
		return
	}

	form, err := h.formsDBConn.GetFormDefinitionByID(response.FormID.Hex())
	if err != nil {
		slog.Error("failed to fetch form for response", slog.String("responseID", responseID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch response"})
		return
	}

	if form.Owner.Hex() != token.Subject {
		slog.Warn("response access denied", slog.String("userID", token.Subject), slog.String("responseID", responseID))
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only view responses to forms you created"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}
