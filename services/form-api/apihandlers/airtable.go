package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nithin0620/DynoForm/pkg/airtable"
	mw "github.com/Nithin0620/DynoForm/pkg/apihelpers/middlewares"
	"github.com/Nithin0620/DynoForm/pkg/forms"
)

func (h *HttpEndpoints) AddAirtableAPI(rg *gin.RouterGroup) {
	airtableGroup := rg.Group("/airtable")
	airtableGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	{
		airtableGroup.GET("/bases", h.listBases)
		airtableGroup.GET("/base/:baseId/tables", h.listTables)
		airtableGroup.GET("/table/:baseId/:tableId/fields", h.getTableFields)
	}
}

func (h *HttpEndpoints) listBases(c *gin.Context) {
	user, err := h.getUserFromToken(c)
	if err != nil {
		slog.Warn("user not found for token", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	client := airtable.NewClient(user.AccessToken, h.airtableClientConfig)
	bases, err := client.ListBases()
	if err != nil {
		slog.Error("error listing bases", slog.String("userID", user.ID.Hex()), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bases"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bases": bases})
}

func (h *HttpEndpoints) listTables(c *gin.Context) {
	user, err := h.getUserFromToken(c)
	if err != nil {
		slog.Warn("user not found for token", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	baseID := c.Param("baseId")

	client := airtable.NewClient(user.AccessToken, h.airtableClientConfig)
	tables, err := client.GetBaseSchema(baseID)
	if err != nil {
		slog.Error("error listing tables", slog.String("userID", user.ID.Hex()), slog.String("baseId", baseID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tables"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

type mappedFieldInfo struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	MappedType string   `json:"mappedType"`
	Options    []string `json:"options,omitempty"`
}

type unsupportedFieldInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// getTableFields splits a table's fields into the ones that can back a
// question (with the mapped question type and select options) and the ones
// that can't.
func (h *HttpEndpoints) getTableFields(c *gin.Context) {
	user, err := h.getUserFromToken(c)
	if err != nil {
		slog.Warn("user not found for token", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	baseID := c.Param("baseId")
	tableID := c.Param("tableId")

	client := airtable.NewClient(user.AccessToken, h.airtableClientConfig)
	fields, err := client.GetTableFields(baseID, tableID)
	if err != nil {
		slog.Error("error fetching table fields", slog.String("userID", user.ID.Hex()), slog.String("baseId", baseID), slog.String("tableId", tableID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch table fields"})
		return
	}

	supportedFields := []mappedFieldInfo{}
	unsupportedFields := []unsupportedFieldInfo{}
	for _, field := range fields {
		questionType, ok := forms.MapAirtableFieldType(field.Type)
		if !ok {
			unsupportedFields = append(unsupportedFields, unsupportedFieldInfo{
				ID:     field.ID,
				Name:   field.Name,
				Type:   field.Type,
				Reason: "unsupported field type",
			})
			continue
		}
		supportedFields = append(supportedFields, mappedFieldInfo{
			ID:         field.ID,
			Name:       field.Name,
			Type:       field.Type,
			MappedType: questionType,
			Options:    field.Options.ChoiceNames(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"supportedFields":   supportedFields,
		"unsupportedFields": unsupportedFields,
		"totalFields":       len(fields),
		"supportedCount":    len(supportedFields),
		"unsupportedCount":  len(unsupportedFields),
	})
}
