package handlers

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"go-retail/internal/common/calcprotocol"
	"go-retail/internal/retail/calculator"
	"go-retail/internal/retail/service"
	"go-retail/pkg/logging"
	"go.uber.org/zap"
	"net/http"
)

const calculatorNameParam = "name"

type CalculationService interface {
	Calculate(ctx context.Context, name string, inputs map[string]string) (service.Result, error)
	Reset(ctx context.Context, name string, inputs map[string]string) (service.Result, error)
}

// CalculationHandler recomputes a calculator, or resets it when reset is set.
type CalculationHandler struct {
	service CalculationService
	reset   bool
	logger  *logging.ZapLogger
}

func NewCalculationHandler(service CalculationService, logger *logging.ZapLogger) *CalculationHandler {
	return &CalculationHandler{
		service: service,
		logger:  logger,
	}
}

func NewCalculatorResetHandler(service CalculationService, logger *logging.ZapLogger) *CalculationHandler {
	return &CalculationHandler{
		service: service,
		reset:   true,
		logger:  logger,
	}
}

func (h *CalculationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	ctx := r.Context()
	name := chi.URLParam(r, calculatorNameParam)

	request, err := decodeOptionalJSON[calcprotocol.CalculateRequest](r.Body)
	if err != nil {
		h.logger.DebugCtx(ctx, "input decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	run := h.service.Calculate
	if h.reset {
		run = h.service.Reset
	}
	result, err := run(ctx, name, request.Inputs)
	if err != nil {
		switch {
		case errors.Is(err, calculator.ErrUnknownCalculator):
			h.logger.DebugCtx(ctx, "", zap.Error(err))
			w.WriteHeader(http.StatusNotFound)
			return
		case errors.Is(err, service.ErrUnknownField):
			h.logger.DebugCtx(ctx, "", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		default:
			h.logger.ErrorCtx(ctx, "Error running calculator", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	if err := tryWriteResponseJSON(w, convertResult(result)); err != nil {
		h.logger.ErrorCtx(ctx, "Error writing response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func convertResult(result service.Result) calcprotocol.CalculateResponse {
	res := calcprotocol.CalculateResponse{
		Calculator: result.Calculator,
		Inputs:     result.Inputs,
		Outputs:    make(map[string]calcprotocol.Output, len(result.Outputs)),
		Order:      result.Order,
		Message:    result.Message,
	}
	for name, out := range result.Outputs {
		res.Outputs[name] = calcprotocol.Output{Text: out.Text, Tone: string(out.Tone)}
	}
	return res
}
