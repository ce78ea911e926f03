package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func newBusinessRouter() http.Handler {
	taxStore := registry.NewMemStore[model.BusinessTaxConfig]("business-tax",
		func(c *model.BusinessTaxConfig) uuid.UUID { return c.ID },
		func(c *model.BusinessTaxConfig, id uuid.UUID) { c.ID = id },
	)
	feeStore := registry.NewMemStore[model.RegulatoryFeeConfig]("regulatory-fee",
		func(c *model.RegulatoryFeeConfig) uuid.UUID { return c.ID },
		func(c *model.RegulatoryFeeConfig, id uuid.UUID) { c.ID = id },
	)
	svc := service.NewBusinessConfigService(taxStore, feeStore, nil)
	return newTestRouter(NewBusinessConfigHandler(svc).RegisterRoutes)
}

func postJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var res response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	data, ok := res.Data.(map[string]interface{})
	require.True(t, ok, "expected object data, got %T", res.Data)
	return data
}

func createBracket(t *testing.T, router http.Handler) string {
	t.Helper()
	w := postJSON(t, router, http.MethodPost, "/api/business/business-configurations", gin.H{
		"business_type":  "Retailer",
		"min_range":      "0",
		"max_range":      "400000",
		"tax_rate":       "0.02",
		"effective_date": "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData(t, w)["id"].(string)
}

func TestCreateBusinessTaxEndpoint(t *testing.T) {
	router := newBusinessRouter()

	w := postJSON(t, router, http.MethodPost, "/api/business/business-configurations", gin.H{
		"business_type":  "Retailer",
		"min_range":      "0",
		"tax_rate":       "0.02",
		"effective_date": "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.Equal(t, "Retailer", data["business_type"])
	assert.Equal(t, "active", data["status"])
	assert.Nil(t, data["max_range"], "empty max_range means top bracket")
}

func TestCreateBusinessTaxEndpointRejectsBadPayload(t *testing.T) {
	router := newBusinessRouter()

	t.Run("missing required field", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPost, "/api/business/business-configurations", gin.H{
			"business_type": "Retailer",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPost, "/api/business/business-configurations", gin.H{
			"business_type":  "Retailer",
			"min_range":      "0",
			"tax_rate":       "0.02",
			"effective_date": "January 1st",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListBusinessTaxEndpoint(t *testing.T) {
	router := newBusinessRouter()
	createBracket(t, router)

	t.Run("applicable on date", func(t *testing.T) {
		w := postJSON(t, router, http.MethodGet, "/api/business/business-configurations?current_date=2024-03-01", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		items, ok := res.Data.([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 1)
	})

	t.Run("not yet effective", func(t *testing.T) {
		w := postJSON(t, router, http.MethodGet, "/api/business/business-configurations?current_date=2023-01-01", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		items, ok := res.Data.([]interface{})
		require.True(t, ok)
		assert.Empty(t, items)
	})

	t.Run("bad current_date", func(t *testing.T) {
		w := postJSON(t, router, http.MethodGet, "/api/business/business-configurations?current_date=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPatchBusinessTaxEndpoint(t *testing.T) {
	router := newBusinessRouter()
	id := createBracket(t, router)

	t.Run("allow-listed field", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPatch, "/api/business/business-configurations/"+id, gin.H{
			"tax_rate": "0.03",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "0.03", decodeData(t, w)["tax_rate"])
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPatch, "/api/business/business-configurations/"+id, gin.H{
			"business_type": "Wholesaler",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "natural key is outside the patch allow-list")
	})

	t.Run("empty body rejected", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPatch, "/api/business/business-configurations/"+id, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPatch, "/api/business/business-configurations/"+uuid.NewString(), gin.H{
			"tax_rate": "0.03",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestExpireBusinessTaxEndpoint(t *testing.T) {
	router := newBusinessRouter()
	id := createBracket(t, router)

	w := postJSON(t, router, http.MethodPost, "/api/business/business-configurations/"+id+"/expire", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.Equal(t, "expired", data["status"])
	assert.NotNil(t, data["expiration_date"])
}

func TestDeleteBusinessTaxEndpoint(t *testing.T) {
	router := newBusinessRouter()
	id := createBracket(t, router)

	w := postJSON(t, router, http.MethodDelete, "/api/business/business-configurations/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, http.MethodDelete, "/api/business/business-configurations/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegulatoryFeeEndpoints(t *testing.T) {
	router := newBusinessRouter()

	w := postJSON(t, router, http.MethodPost, "/api/business/regulatory-configurations", gin.H{
		"fee_name":       "Sanitary Permit",
		"amount":         "150",
		"effective_date": "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeData(t, w)["id"].(string)

	t.Run("replace", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPut, "/api/business/regulatory-configurations/"+id, gin.H{
			"fee_name":       "Sanitary Permit",
			"amount":         "200",
			"effective_date": "2024-01-01",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "200", decodeData(t, w)["amount"])
	})

	t.Run("patch narrows business type", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPatch, "/api/business/regulatory-configurations/"+id, gin.H{
			"business_type": "Restaurant",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Restaurant", decodeData(t, w)["business_type"])
	})

	t.Run("patch rejects fee_name", func(t *testing.T) {
		w := postJSON(t, router, http.MethodPatch, "/api/business/regulatory-configurations/"+id, gin.H{
			"fee_name": "Renamed",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
