// Package calcclient talks to a running retailcalc server.
package calcclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-resty/resty/v2"
	"go-retail/internal/common/calcprotocol"
	"go-retail/pkg/logging"
	"go.uber.org/zap"
	"net/http"
	"strings"
)

var (
	ErrUnknownCalculator = errors.New("unknown calculator")
	ErrBadRequest        = errors.New("request rejected")
)

type Config struct {
	ServerAddress string
}

type Client struct {
	client *resty.Client
	logger *logging.ZapLogger
}

// New creates a client for cfg.ServerAddress. A bare host:port is treated as
// plain http.
func New(cfg Config, logger *logging.ZapLogger) *Client {
	address := cfg.ServerAddress
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	return &Client{
		client: resty.New().SetBaseURL(strings.TrimSuffix(address, "/")),
		logger: logger,
	}
}

func (c *Client) Calculators(ctx context.Context) ([]calcprotocol.Calculator, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/calculators")
	if err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	var res []calcprotocol.Calculator
	return res, c.decode(ctx, resp, &res)
}

func (c *Client) Calculate(ctx context.Context, name string, inputs map[string]string) (calcprotocol.CalculateResponse, error) {
	return c.calculate(ctx, "/api/calculators/{name}", name, inputs)
}

func (c *Client) Reset(ctx context.Context, name string) (calcprotocol.CalculateResponse, error) {
	return c.calculate(ctx, "/api/calculators/{name}/reset", name, nil)
}

func (c *Client) calculate(
	ctx context.Context,
	path, name string,
	inputs map[string]string,
) (calcprotocol.CalculateResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetBody(calcprotocol.CalculateRequest{Inputs: inputs}).
		Post(path)
	if err != nil {
		return calcprotocol.CalculateResponse{}, fmt.Errorf("post request failed: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return calcprotocol.CalculateResponse{}, fmt.Errorf("%q: %w", name, ErrUnknownCalculator)
	}
	var res calcprotocol.CalculateResponse
	return res, c.decode(ctx, resp, &res)
}

func (c *Client) Products(ctx context.Context) ([]calcprotocol.Product, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/reorder")
	if err != nil {
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	var res []calcprotocol.Product
	return res, c.decode(ctx, resp, &res)
}

func (c *Client) Order(ctx context.Context, quantities map[string]string) (calcprotocol.OrderResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(calcprotocol.ReorderRequest{Quantities: quantities}).
		Post("/api/reorder/order")
	if err != nil {
		return calcprotocol.OrderResponse{}, fmt.Errorf("post request failed: %w", err)
	}
	var res calcprotocol.OrderResponse
	return res, c.decode(ctx, resp, &res)
}

func (c *Client) decode(ctx context.Context, resp *resty.Response, out any) error {
	statusCode := resp.StatusCode()
	switch statusCode {
	case http.StatusOK:
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			c.logger.ErrorCtx(ctx, "Error unmarshalling response", zap.Error(err))
			return fmt.Errorf("error unmarshalling response: %w", err)
		}
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("%s %s: %w", resp.Request.Method, resp.Request.URL, ErrBadRequest)
	default:
		return fmt.Errorf("unexpected status code %v", statusCode)
	}
}
