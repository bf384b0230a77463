package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/model/response"
)

func TestNewErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fn       func(string) error
		wantCode int
	}{
		{name: "400", fn: NewBadRequestError, wantCode: http.StatusBadRequest},
		{name: "404", fn: NewNotFoundError, wantCode: http.StatusNotFound},
		{name: "429", fn: NewTooManyRequestsError, wantCode: http.StatusTooManyRequests},
		{name: "500", fn: NewInternalServerError, wantCode: http.StatusInternalServerError},
		{name: "503", fn: NewServiceUnavailableError, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.fn("message")

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.wantCode, he.Code)
			assert.Equal(t, response.ErrorResponse{ResultCode: tt.wantCode, Message: "message"}, he.Message)
		})
	}
}

func TestOK(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil), rec)

	require.NoError(t, OK(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
