package handlers

import (
	"context"
	"errors"
	"go-retail/internal/common/calcprotocol"
	"go-retail/internal/retail/service"
	"go-retail/pkg/logging"
	"go.uber.org/zap"
	"net/http"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFileName  = "reorder.xlsx"
)

type ReorderService interface {
	Totals(ctx context.Context, quantities map[string]string) (service.Totals, error)
	Order(ctx context.Context, quantities map[string]string) (service.Order, error)
	Export(ctx context.Context, quantities map[string]string) ([]byte, error)
}

type reorderAction func(ctx context.Context, w http.ResponseWriter, quantities map[string]string) error

type ReorderHandler struct {
	action reorderAction
	logger *logging.ZapLogger
}

func NewReorderTotalsHandler(s ReorderService, logger *logging.ZapLogger) *ReorderHandler {
	return &ReorderHandler{
		action: func(ctx context.Context, w http.ResponseWriter, quantities map[string]string) error {
			totals, err := s.Totals(ctx, quantities)
			if err != nil {
				return err
			}
			res := calcprotocol.ReorderTotals{
				Rows:       make([]calcprotocol.RowTotal, 0, len(totals.Rows)),
				GrandTotal: totals.GrandTotal,
			}
			for _, row := range totals.Rows {
				res.Rows = append(res.Rows, calcprotocol.RowTotal(row))
			}
			return tryWriteResponseJSON(w, res)
		},
		logger: logger,
	}
}

func NewOrderBuildingHandler(s ReorderService, logger *logging.ZapLogger) *ReorderHandler {
	return &ReorderHandler{
		action: func(ctx context.Context, w http.ResponseWriter, quantities map[string]string) error {
			order, err := s.Order(ctx, quantities)
			if err != nil {
				return err
			}
			return tryWriteResponseJSON(w, calcprotocol.OrderResponse(order))
		},
		logger: logger,
	}
}

func NewReorderExportHandler(s ReorderService, logger *logging.ZapLogger) *ReorderHandler {
	return &ReorderHandler{
		action: func(ctx context.Context, w http.ResponseWriter, quantities map[string]string) error {
			data, err := s.Export(ctx, quantities)
			if err != nil {
				return err
			}
			w.Header().Add("Content-Type", xlsxContentType)
			w.Header().Add("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
			_, err = w.Write(data)
			return err
		},
		logger: logger,
	}
}

func (h *ReorderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	request, err := decodeOptionalJSON[calcprotocol.ReorderRequest](r.Body)
	if err != nil {
		h.logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.action(r.Context(), w, request.Quantities); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownProduct):
			h.logger.DebugCtx(r.Context(), "", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		default:
			h.logger.ErrorCtx(r.Context(), "Error handling reorder request", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}
}
