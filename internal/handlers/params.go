package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"hospital-api/internal/apperrors"
)

// intQuery parses an optional integer query parameter. An absent or empty
// parameter returns nil; a non-numeric one is a validation failure.
func intQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("Invalid %s", name))
	}
	return &value, nil
}

// stringQuery returns an optional string query parameter, nil when absent.
func stringQuery(c *gin.Context, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// intParam parses a required integer path parameter.
func intParam(c *gin.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apperrors.Validation(fmt.Sprintf("Invalid %s", name))
	}
	return value, nil
}
