package handler

import (
	"encoding/json"
	"net/http"

	"revenue/internal/registry"
	"revenue/pkg/response"

	"github.com/gin-gonic/gin"
)

// bindStrictJSON decodes a request body rejecting unknown fields, so a PATCH
// naming a column outside the kind's allow-list is refused instead of being
// silently dropped.
func bindStrictJSON(c *gin.Context, dst interface{}) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeError maps registry error kinds to HTTP statuses. Anything that is not
// a caller mistake is treated as a store failure.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case registry.IsValidation(err):
		status = http.StatusBadRequest
	case registry.IsNotFound(err):
		status = http.StatusNotFound
	case registry.IsConflict(err):
		status = http.StatusConflict
	}
	c.JSON(status, response.Error(status, err.Error()))
}
