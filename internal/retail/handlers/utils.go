package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"go-retail/pkg/logging"
	"go.uber.org/zap"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

func closeBody(ctx context.Context, body io.ReadCloser, logger *logging.ZapLogger) {
	err := body.Close()
	if err != nil {
		logger.ErrorCtx(ctx, "failed to close body", zap.Error(err))
	}
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	decoder := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&out)
	return out, err
}

// decodeOptionalJSON is decodeJSON that accepts an empty body.
func decodeOptionalJSON[T any](r io.Reader) (T, error) {
	out, err := decodeJSON[T](r)
	if errors.Is(err, io.EOF) {
		return out, nil
	}
	return out, err
}

func tryWriteResponseJSON(w http.ResponseWriter, responseItem any) error {
	res, err := json.Marshal(responseItem)
	if err != nil {
		return err
	}
	w.Header().Add("Content-Type", "application/json")
	_, err = w.Write(res)
	if err != nil {
		return err
	}
	return nil
}
