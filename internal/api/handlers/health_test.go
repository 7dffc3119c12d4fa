package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_handlers "hangpay/internal/api/handlers/mocks"
)

func TestHealthHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	tests := []struct {
		name     string
		checkErr error
		wantCode int
	}{
		{name: "success", checkErr: nil, wantCode: http.StatusOK},
		{
			name:     "fail",
			checkErr: errors.New("db unreachable"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockHealthService(ctrl)
			m.EXPECT().Check(gomock.Any()).Return(tc.checkErr)

			handler := NewHealthHandler(m)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
