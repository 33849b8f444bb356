package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"not found", common.NotFoundError{ID: 5}, http.StatusNotFound, CodeAssetNotFound, "Asset with ID 5 not found"},
		{"wrapped not found", fmt.Errorf("ctx: %w", common.NotFoundError{ID: 5}), http.StatusNotFound, CodeAssetNotFound, "Asset with ID 5 not found"},
		{"duplicate", common.DuplicateSerialNumberError{SerialNumber: "A"}, http.StatusConflict, CodeDuplicateSerialNumber, "Asset with serial number 'A' already exists"},
		{"validation", common.NewValidationError("Invalid input"), http.StatusUnprocessableEntity, CodeValidation, "Invalid input"},
		{"storage", common.NewStorageError("x", errors.New("secret")), http.StatusInternalServerError, CodeDatabase, msgDatabase},
		{"http", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, CodeHTTP, "Method Not Allowed"},
		{"unknown", errors.New("nil pointer"), http.StatusInternalServerError, CodeInternal, msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
		})
	}
}

func TestMapError_ValidationDetails(t *testing.T) {
	err := common.NewValidationError("Invalid input").WithDetail("purchase_price", "must be greater than 0")

	_, resp := MapError(err)
	assert.Equal(t, map[string]any{"purchase_price": "must be greater than 0"}, resp.Error.Details)
}
