package handlers

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-retail/internal/common/calcprotocol"
	"go-retail/internal/retail/service"
	"go-retail/pkg/logging"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubCalculations struct {
	lastName   string
	lastInputs map[string]string
	resetCalls int
	err        error
}

func (s *stubCalculations) Calculate(_ context.Context, name string, inputs map[string]string) (service.Result, error) {
	s.lastName, s.lastInputs = name, inputs
	return service.Result{Calculator: name}, s.err
}

func (s *stubCalculations) Reset(_ context.Context, name string, inputs map[string]string) (service.Result, error) {
	s.resetCalls++
	s.lastName = name
	return service.Result{Calculator: name}, s.err
}

type stubReorder struct {
	err error
}

func (s stubReorder) Totals(context.Context, map[string]string) (service.Totals, error) {
	return service.Totals{}, s.err
}

func (s stubReorder) Order(context.Context, map[string]string) (service.Order, error) {
	return service.Order{Text: "order"}, s.err
}

func (s stubReorder) Export(context.Context, map[string]string) ([]byte, error) {
	return []byte("xlsx"), s.err
}

type notice string

func (n notice) Current() string {
	return string(n)
}

func serveCalculation(h http.Handler, name, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Post("/{name}", h.ServeHTTP)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/"+name, strings.NewReader(body)))
	return rec
}

func TestCalculationHandler(t *testing.T) {
	s := &stubCalculations{}
	rec := serveCalculation(NewCalculationHandler(s, logging.NewNop()), "gst", `{"inputs":{"gstRate":"5"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gst", s.lastName)
	assert.Equal(t, map[string]string{"gstRate": "5"}, s.lastInputs)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Zero(t, s.resetCalls)
}

func TestCalculatorResetHandler(t *testing.T) {
	s := &stubCalculations{}
	rec := serveCalculation(NewCalculatorResetHandler(s, logging.NewNop()), "gst", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, s.resetCalls)
}

func TestCalculationHandlerInternalError(t *testing.T) {
	s := &stubCalculations{err: errors.New("boom")}
	rec := serveCalculation(NewCalculationHandler(s, logging.NewNop()), "gst", "{}")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReorderHandlers(t *testing.T) {
	logger := logging.NewNop()
	tests := []struct {
		name        string
		handler     http.Handler
		err         error
		status      int
		contentType string
	}{
		{name: "totals", handler: NewReorderTotalsHandler(stubReorder{}, logger), status: http.StatusOK, contentType: "application/json"},
		{name: "order", handler: NewOrderBuildingHandler(stubReorder{}, logger), status: http.StatusOK, contentType: "application/json"},
		{name: "export", handler: NewReorderExportHandler(stubReorder{}, logger), status: http.StatusOK, contentType: xlsxContentType},
		{
			name:    "unknown product",
			handler: NewOrderBuildingHandler(stubReorder{err: service.ErrUnknownProduct}, logger),
			status:  http.StatusBadRequest,
		},
		{
			name:    "failure",
			handler: NewReorderExportHandler(stubReorder{err: errors.New("disk full")}, logger),
			status:  http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantities":{}}`)))

			assert.Equal(t, tt.status, rec.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestNoticeGettingHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NewNoticeGettingHandler(notice("Order text copied to clipboard!"), logging.NewNop()).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Order text copied to clipboard!"}`, rec.Body.String())
}

func TestDecodeOptionalJSON(t *testing.T) {
	req, err := decodeOptionalJSON[calcprotocol.ReorderRequest](strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, req.Quantities)

	_, err = decodeOptionalJSON[calcprotocol.ReorderRequest](strings.NewReader(`{"extra":1}`))
	assert.Error(t, err)
}
