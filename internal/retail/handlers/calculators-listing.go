package handlers

import (
	"go-retail/internal/common/calcprotocol"
	"go-retail/internal/retail/calculator"
	"go-retail/pkg/logging"
	"go.uber.org/zap"
	"net/http"
)

type CalculatorsListingHandler struct {
	service CalculatorsListingService
	logger  *logging.ZapLogger
}

type CalculatorsListingService interface {
	List() []calculator.Spec
}

func NewCalculatorsListingHandler(service CalculatorsListingService, logger *logging.ZapLogger) *CalculatorsListingHandler {
	return &CalculatorsListingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CalculatorsListingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	specs := h.service.List()
	res := make([]calcprotocol.Calculator, 0, len(specs))
	for _, spec := range specs {
		res = append(res, convertSpec(spec))
	}
	if err := tryWriteResponseJSON(w, res); err != nil {
		h.logger.ErrorCtx(r.Context(), "Error writing response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func convertSpec(spec calculator.Spec) calcprotocol.Calculator {
	res := calcprotocol.Calculator{
		Name:    spec.Name,
		Title:   spec.Title,
		Inputs:  make([]calcprotocol.Input, 0, len(spec.Inputs)),
		Outputs: make([]string, 0, len(spec.Outputs)),
	}
	for _, in := range spec.Inputs {
		res.Inputs = append(res.Inputs, calcprotocol.Input{
			Name:     in.Name,
			Label:    in.Label,
			Kind:     in.Kind.String(),
			Optional: in.Optional,
		})
	}
	for _, out := range spec.Outputs {
		res.Outputs = append(res.Outputs, out.Name)
	}
	return res
}
