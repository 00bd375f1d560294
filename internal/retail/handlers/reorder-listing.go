package handlers

import (
	"go-retail/internal/common/calcprotocol"
	"go-retail/internal/retail/catalog"
	"go-retail/pkg/logging"
	"go.uber.org/zap"
	"net/http"
)

type ReorderListingHandler struct {
	service ReorderListingService
	logger  *logging.ZapLogger
}

type ReorderListingService interface {
	Products() []catalog.Product
}

func NewReorderListingHandler(service ReorderListingService, logger *logging.ZapLogger) *ReorderListingHandler {
	return &ReorderListingHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ReorderListingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	products := h.service.Products()
	res := make([]calcprotocol.Product, 0, len(products))
	for _, p := range products {
		res = append(res, calcprotocol.Product{
			Name:      p.Name,
			UnitType:  p.UnitType,
			UnitValue: p.UnitValue,
			UnitPrice: p.UnitPrice,
		})
	}
	if err := tryWriteResponseJSON(w, res); err != nil {
		h.logger.ErrorCtx(r.Context(), "Error writing response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}
