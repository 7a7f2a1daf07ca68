package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbatransit/transit-tracker/internal/identifier"
)

// The validators are stateless, so these run without a database.
func setupValidationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewValidationHandler()
	api := router.Group("/api/v1")
	api.POST("/validate/tracking", h.Tracking)
	api.POST("/validate/bl", h.BL)
	api.POST("/validate/container", h.Container)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestValidationHandler_Tracking(t *testing.T) {
	router := setupValidationRouter()

	t.Run("generated number is valid", func(t *testing.T) {
		tracking, err := identifier.GenerateTrackingNumber(identifier.RegimeImport)
		require.NoError(t, err)

		body, _ := json.Marshal(gin.H{"value": tracking})
		w := postJSON(t, router, "/api/v1/validate/tracking", string(body))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp identifier.TrackingResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, identifier.RegimeImport, resp.Regime)
	})

	t.Run("corrupted check digit is 200 with valid=false", func(t *testing.T) {
		// Luhn over 26123456789 is 3, so a stored 0 must fail.
		w := postJSON(t, router, "/api/v1/validate/tracking", `{"value":"IM4-26-123456-789-0-GN"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp identifier.TrackingResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		assert.Contains(t, resp.Error, "checksum")
	})

	t.Run("malformed number reports format error", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/validate/tracking", `{"value":"not-a-tracking-number"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp identifier.TrackingResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		assert.Contains(t, resp.Error, "format")
	})

	t.Run("missing value is 400", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/validate/tracking", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestValidationHandler_BL(t *testing.T) {
	router := setupValidationRouter()

	t.Run("maersk bl valid", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/validate/bl", `{"value":"MAEU123456789","carrier":"Maersk"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp identifier.BLResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, "MAEU123456789", resp.Normalized)
	})

	t.Run("lowercase with spaces normalizes", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/validate/bl", `{"value":"maeu 1234 56789","carrier":"Maersk"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp identifier.BLResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, "MAEU123456789", resp.Normalized)
	})

	t.Run("too short rejected", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/validate/bl", `{"value":"AB1"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp identifier.BLResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
	})
}

func TestValidationHandler_Container(t *testing.T) {
	router := setupValidationRouter()

	t.Run("valid container", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/validate/container", `{"value":"CSQU3054383"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp identifier.ContainerResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, "CSQU", resp.OwnerCode)
		assert.Equal(t, "305438", resp.SerialNumber)
		assert.Equal(t, 3, resp.CheckDigit)
	})

	t.Run("wrong check digit", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/validate/container", `{"value":"MSCU1234568"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp identifier.ContainerResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		assert.Contains(t, resp.Error, "check digit")
		assert.Equal(t, 6, resp.ExpectedCheckDigit)
	})

	t.Run("bad format", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/validate/container", `{"value":"ABC123"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp identifier.ContainerResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
	})
}
