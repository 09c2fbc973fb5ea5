package airtable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const DefaultAPIBaseURL = "https://api.airtable.com/v0"

type ClientConfig struct {
	APIBaseURL string        `json:"api_base_url" yaml:"api_base_url"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// Client talks to the Airtable REST API on behalf of one connected account.
type Client struct {
	config      ClientConfig
	accessToken string
}

func NewClient(accessToken string, config ClientConfig) *Client {
	if config.APIBaseURL == "" {
		config.APIBaseURL = DefaultAPIBaseURL
	}
	return &Client{
		config:      config,
		accessToken: accessToken,
	}
}

func (c *Client) runRequest(method string, pathname string, payload interface{}, target interface{}) error {
	var body *bytes.Buffer
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(jsonData)
	} else {
		body = bytes.NewBuffer(nil)
	}

	url := c.config.APIBaseURL + pathname
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		slog.Error("unexpected error in preparing http request", slog.String("error", err.Error()))
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{
		Timeout: c.config.Timeout,
	}
	resp, err := client.Do(req)
	if err != nil {
		slog.Error("unexpected error in http call", slog.String("error", err.Error()), slog.String("path", pathname))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody apiError
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error.Message != "" {
			return fmt.Errorf("airtable request failed (%d): %s", resp.StatusCode, errBody.Error.Message)
		}
		return fmt.Errorf("airtable request failed with status %d", resp.StatusCode)
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		slog.Error("Error decoding response", slog.String("error", err.Error()), slog.String("path", pathname))
		return err
	}
	return nil
}

func (c *Client) ListBases() ([]Base, error) {
	var result struct {
		Bases []Base `json:"bases"`
	}
	if err := c.runRequest(http.MethodGet, "/meta/bases", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch bases: %w", err)
	}
	return result.Bases, nil
}

func (c *Client) GetBaseSchema(baseID string) ([]Table, error) {
	var result struct {
		Tables []Table `json:"tables"`
	}
	if err := c.runRequest(http.MethodGet, "/meta/bases/"+baseID+"/tables", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch base schema: %w", err)
	}
	return result.Tables, nil
}

// GetTableFields resolves a table by id or name within a base and returns
// its fields.
func (c *Client) GetTableFields(baseID string, tableIDOrName string) ([]Field, error) {
	tables, err := c.GetBaseSchema(baseID)
	if err != nil {
		return nil, err
	}
	for _, table := range tables {
		if table.ID == tableIDOrName || table.Name == tableIDOrName {
			return table.Fields, nil
		}
	}
	return nil, fmt.Errorf("table %s not found in base %s", tableIDOrName, baseID)
}

func (c *Client) CreateRecord(baseID string, tableIDOrName string, fields map[string]interface{}) (*Record, error) {
	payload := map[string]interface{}{
		"fields": fields,
	}
	var record Record
	if err := c.runRequest(http.MethodPost, "/"+baseID+"/"+tableIDOrName, payload, &record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return &record, nil
}

func (c *Client) UpdateRecord(baseID string, tableIDOrName string, recordID string, fields map[string]interface{}) (*Record, error) {
	payload := map[string]interface{}{
		"fields": fields,
	}
	var record Record
	if err := c.runRequest(http.MethodPatch, "/"+baseID+"/"+tableIDOrName+"/"+recordID, payload, &record); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	return &record, nil
}

func (c *Client) GetRecord(baseID string, tableIDOrName string, recordID string) (*Record, error) {
	var record Record
	if err := c.runRequest(http.MethodGet, "/"+baseID+"/"+tableIDOrName+"/"+recordID, nil, &record); err != nil {
		return nil, fmt.Errorf("failed to fetch record: %w", err)
	}
	return &record, nil
}

func (c *Client) DeleteRecord(baseID string, tableIDOrName string, recordID string) error {
	if err := c.runRequest(http.MethodDelete, "/"+baseID+"/"+tableIDOrName+"/"+recordID, nil, nil); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}
