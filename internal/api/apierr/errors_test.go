package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/teamroster/internal/model"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", model.ErrNotFound, http.StatusNotFound, CodePlayerNotFound},
		{"wrapped not found", fmt.Errorf("remove: %w", model.ErrNotFound), http.StatusNotFound, CodePlayerNotFound},
		{"duplicate", model.ErrDuplicateName, http.StatusConflict, CodeDuplicateName},
		{"swap", &model.SwapError{Reason: "both players have the same status"}, http.StatusConflict, CodeInvalidSwap},
		{"validation", model.NewValidationError("age", "must be a positive integer"), http.StatusBadRequest, CodeValidationFailed},
		{"invalid request", NewInvalidRequestError("bad body"), http.StatusBadRequest, CodeInvalidRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestValidationMessageNamesField(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, model.NewValidationError("age", "must be a positive integer"))
	assert.Contains(t, rr.Body.String(), "age: must be a positive integer")
}

func TestInternalErrorHidesDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, errors.New("connection refused to 10.0.0.3"))
	assert.NotContains(t, rr.Body.String(), "10.0.0.3")
}
