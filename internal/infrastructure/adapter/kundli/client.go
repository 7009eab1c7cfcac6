package kundli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/astrodash/astro-api/internal/domain/entity"
	errs "github.com/astrodash/astro-api/internal/domain/error"
	"github.com/astrodash/astro-api/internal/domain/port/client"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/infrastructure/config"
)

// chartRequest is the payload the kundli service expects
type chartRequest struct {
	DateOfBirth string  `json:"date_of_birth"`
	TimeOfBirth string  `json:"time_of_birth"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// chartResponse is the kundli service response envelope
type chartResponse struct {
	Meta struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"meta"`
	Kundli map[string]any `json:"kundli"`
}

// Client calls the kundli computation service over HTTP
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     coreport.Logger
}

// NewClient creates a kundli service client from configuration
func NewClient(cfg config.KundliConfig, logger coreport.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// ComputeChart calls the kundli service with the user's birth details and
// returns the computed chart keyed for template consumption
func (c *Client) ComputeChart(ctx context.Context, name string, birth entity.BirthDetails) (client.KundliChart, error) {
	c.logger.Debug("Computing kundli chart", map[string]any{
		"name":        name,
		"birth_date":  birth.DateOfBirth,
		"birth_place": birth.BirthPlace,
	})

	payload, err := json.Marshal(chartRequest{
		DateOfBirth: birth.DateOfBirth,
		TimeOfBirth: birth.TimeOfBirth,
		Latitude:    birth.Latitude,
		Longitude:   birth.Longitude,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %s", errs.ErrKundliComputation, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate_kundli", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %s", errs.ErrKundliComputation, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Kundli service request failed", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrKundliComputation, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %s", errs.ErrKundliComputation, err.Error())
	}

	var decoded chartResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %s", errs.ErrKundliComputation, err.Error())
	}

	if resp.StatusCode != http.StatusOK || decoded.Meta.Status != "success" {
		c.logger.Warn("Kundli service rejected request", map[string]any{
			"status_code": resp.StatusCode,
			"message":     decoded.Meta.Message,
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrKundliComputation, decoded.Meta.Message)
	}

	c.logger.Debug("Kundli chart computed", map[string]any{
		"name": name,
	})
	return client.KundliChart{"kundli": decoded.Kundli}, nil
}
