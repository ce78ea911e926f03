package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"revenue/internal/model"
	"revenue/internal/registry"
	"revenue/internal/service"
	"revenue/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRPTRouter() http.Handler {
	landStore := registry.NewMemStore[model.LandConfig]("land",
		func(c *model.LandConfig) uuid.UUID { return c.ID },
		func(c *model.LandConfig, id uuid.UUID) { c.ID = id },
	)
	propertyStore := registry.NewMemStore[model.PropertyConfig]("property",
		func(c *model.PropertyConfig) uuid.UUID { return c.ID },
		func(c *model.PropertyConfig, id uuid.UUID) { c.ID = id },
	)
	taxStore := registry.NewMemStore[model.RPTTaxConfig]("rpt-tax",
		func(c *model.RPTTaxConfig) uuid.UUID { return c.ID },
		func(c *model.RPTTaxConfig, id uuid.UUID) { c.ID = id },
	)
	svc := service.NewRPTConfigService(landStore, propertyStore, taxStore, nil)
	return newTestRouter(NewRPTConfigHandler(svc).RegisterRoutes)
}

func TestLandConfigEndpoints(t *testing.T) {
	router := newRPTRouter()

	w := postJSON(t, router, http.MethodPost, "/api/rpt/land-configurations", gin.H{
		"classification":   "Residential",
		"vicinity":         "Poblacion",
		"market_value":     "1500",
		"assessment_level": "0.20",
		"effective_date":   "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeData(t, w)
	id := data["id"].(string)
	assert.Equal(t, "active", data["status"])

	t.Run("patch market value", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPatch, "/api/rpt/land-configurations/"+id, gin.H{
			"market_value": "1800",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "1800", decodeData(t, w)["market_value"])
	})

	t.Run("patch rejects classification", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPatch, "/api/rpt/land-configurations/"+id, gin.H{
			"classification": "Commercial",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("expire then absent from current list", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPost, "/api/rpt/land-configurations/"+id+"/expire", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "expired", decodeData(t, w)["status"])

		w = postJSON(t, router, http.MethodGet, "/api/rpt/land-configurations?current_date=2099-01-01", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var res response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		items, ok := res.Data.([]interface{})
		require.True(t, ok)
		assert.Empty(t, items)
	})
}

func TestPropertyConfigEndpoints(t *testing.T) {
	router := newRPTRouter()

	w := postJSON(t, router, http.MethodPost, "/api/rpt/property-configurations", gin.H{
		"classification":    "Residential",
		"material_type":     "Concrete",
		"unit_cost":         "8000",
		"depreciation_rate": "0.02",
		"min_value":         "0",
		"max_value":         "175000",
		"level_percent":     "0.10",
		"effective_date":    "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeData(t, w)["id"].(string)

	t.Run("replace", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPut, "/api/rpt/property-configurations/"+id, gin.H{
			"classification":    "Residential",
			"material_type":     "Concrete",
			"unit_cost":         "9000",
			"depreciation_rate": "0.02",
			"min_value":         "0",
			"max_value":         "175000",
			"level_percent":     "0.10",
			"effective_date":    "2024-01-01",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "9000", decodeData(t, w)["unit_cost"])
	})

	t.Run("missing required field", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPost, "/api/rpt/property-configurations", gin.H{
			"classification": "Residential",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRPTTaxEndpoints(t *testing.T) {
	router := newRPTRouter()

	w := postJSON(t, router, http.MethodPost, "/api/rpt/tax-configurations", gin.H{
		"tax_name":        "Basic RPT",
		"tax_percent":     "0.01",
		"effective_date":  "2024-01-01",
		"expiration_date": "2024-12-31",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("overlap returns conflict", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPost, "/api/rpt/tax-configurations", gin.H{
			"tax_name":       "Basic RPT",
			"tax_percent":    "0.02",
			"effective_date": "2024-06-01",
		})
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	t.Run("active rate lookup", func(t *testing.T) {
		w := postJSON(t, router, http.MethodGet, "/api/rpt/tax-configurations/active?tax_name=Basic+RPT&current_date=2024-06-01", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := decodeData(t, w)
		assert.Equal(t, "0.01", data["tax_percent"])
		assert.Equal(t, "2024-06-01", data["as_of"])
	})

	t.Run("no rate covers the date", func(t *testing.T) {
		w := postJSON(t, router, http.MethodGet, "/api/rpt/tax-configurations/active?tax_name=Basic+RPT&current_date=2025-06-01", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var res response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Nil(t, res.Data)
	})

	t.Run("tax name required", func(t *testing.T) {
		w := postJSON(t, router, http.MethodGet, "/api/rpt/tax-configurations/active", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
