package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestEstimateHourlyRange(t *testing.T) {
	srv := NewServer("test")

	rec := postJSON(t, srv, "/v1/estimate", map[string]any{
		"policy": map[string]any{
			"pricing_enabled": true,
			"ai_mode":         "range",
			"pricing_model":   "hourly_plus_materials",
		},
		"config": map[string]any{
			"hourly_labor_rate":       80,
			"material_markup_percent": 20,
		},
		"components": map[string]any{
			"labor_hours_low":     2,
			"labor_hours_high":    4,
			"materials_cost_low":  100,
			"materials_cost_high": 150,
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp EstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, int64(280), resp.Estimate.EstimateLow)
	assert.Equal(t, int64(500), resp.Estimate.EstimateHigh)
	require.NotNil(t, resp.Display.MoneyLine)
	assert.Equal(t, "$280 – $500", *resp.Display.MoneyLine)
	assert.NotEmpty(t, resp.RequestID)
}

func TestEstimateDisabledTenantIsNotAnError(t *testing.T) {
	srv := NewServer("test")

	rec := postJSON(t, srv, "/v1/estimate", map[string]any{
		"policy": map[string]any{"pricing_enabled": false},
		"components": map[string]any{
			"flat_total_low":  4000,
			"flat_total_high": 6000,
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp EstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Zero(t, resp.Estimate.EstimateLow)
	assert.Zero(t, resp.Estimate.EstimateHigh)
	assert.Equal(t, "assessment_only", resp.Display.Mode)
	assert.Nil(t, resp.Display.MoneyLine)
}

func TestEstimateGarbagePolicyDegrades(t *testing.T) {
	srv := NewServer("test")

	// Valid JSON with nonsense pricing fields must degrade, not 4xx/5xx.
	rec := postJSON(t, srv, "/v1/estimate", map[string]any{
		"policy": map[string]any{
			"pricing_enabled": []string{"weird"},
			"ai_mode":         42,
			"pricing_model":   true,
		},
		"components": map[string]any{"units_low": -3},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp EstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Estimate.EstimateLow)
}

func TestEstimateRejectsUnreadableBody(t *testing.T) {
	srv := NewServer("test")

	req := httptest.NewRequest(http.MethodPost, "/v1/estimate", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_JSON", resp.Error.Code)
}

func TestDisplayFormatsStoredEstimate(t *testing.T) {
	srv := NewServer("test")

	rec := postJSON(t, srv, "/v1/display", map[string]any{
		"policy": map[string]any{
			"pricing_enabled": true,
			"ai_mode":         "fixed",
		},
		"estimate_low":  390,
		"estimate_high": 390,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp DisplayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "fixed", resp.Display.Mode)
	require.NotNil(t, resp.Display.MoneyLine)
	assert.Equal(t, "$390", *resp.Display.MoneyLine)
}

func TestHealthAndVersion(t *testing.T) {
	srv := NewServer("1.2.3")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1.2.3")
}
