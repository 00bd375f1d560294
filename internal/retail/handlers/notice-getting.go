package handlers

import (
	"go-retail/internal/common/calcprotocol"
	"go-retail/pkg/logging"
	"go.uber.org/zap"
	"net/http"
)

type NoticeGettingHandler struct {
	source NoticeSource
	logger *logging.ZapLogger
}

type NoticeSource interface {
	Current() string
}

func NewNoticeGettingHandler(source NoticeSource, logger *logging.ZapLogger) *NoticeGettingHandler {
	return &NoticeGettingHandler{
		source: source,
		logger: logger,
	}
}

func (h *NoticeGettingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := h.source.Current()
	if message == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := tryWriteResponseJSON(w, calcprotocol.Notice{Message: message}); err != nil {
		h.logger.ErrorCtx(r.Context(), "Error writing response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}
