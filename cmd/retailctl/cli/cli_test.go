package cli

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-retail/internal/common/calcprotocol"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    map[string]string
		wantErr bool
	}{
		{name: "empty", args: nil, want: map[string]string{}},
		{name: "pairs", args: []string{"mrp=200", "salePrice=150"}, want: map[string]string{"mrp": "200", "salePrice": "150"}},
		{name: "empty value", args: []string{"expectedCash="}, want: map[string]string{"expectedCash": ""}},
		{name: "name with comma", args: []string{"Amul Dahi, 400g=6"}, want: map[string]string{"Amul Dahi, 400g": "6"}},
		{name: "value with equals", args: []string{"customerName=a=b"}, want: map[string]string{"customerName": "a=b"}},
		{name: "missing equals", args: []string{"mrp"}, wantErr: true},
		{name: "missing name", args: []string{"=5"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAssignments(tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadAssignment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func run(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetArgs(append([]string{"--server", srv.URL}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCalcCommand(t *testing.T) {
	out, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calculators/margin", r.URL.Path)
		_ = json.NewEncoder(w).Encode(calcprotocol.CalculateResponse{
			Calculator: "margin",
			Outputs: map[string]calcprotocol.Output{
				"grossProfitAmount":     {Text: "₹-20.00", Tone: "negative"},
				"grossMarginPercentage": {Text: "-25.00%", Tone: "negative"},
			},
			Order:   []string{"grossProfitAmount", "grossMarginPercentage"},
			Message: "Selling price cannot be less than cost price for positive margin.",
		})
	}, "calc", "margin", "costPriceMargin=100", "sellingPriceMargin=80")
	require.NoError(t, err)

	assert.Equal(t, "grossProfitAmount: ₹-20.00 (negative)\n"+
		"grossMarginPercentage: -25.00% (negative)\n"+
		"! Selling price cannot be less than cost price for positive margin.\n", out)
}

func TestOutputOrder(t *testing.T) {
	res := calcprotocol.CalculateResponse{
		Outputs: map[string]calcprotocol.Output{"b": {}, "a": {}, "c": {}},
		Order:   []string{"c", "missing", "b"},
	}
	assert.Equal(t, []string{"c", "b", "a"}, outputOrder(res))
}

func TestCalcCommandBadArgument(t *testing.T) {
	_, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, "calc", "margin", "costPriceMargin")
	assert.ErrorIs(t, err, ErrBadAssignment)
}

func TestOrderCommand(t *testing.T) {
	out, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		var req calcprotocol.ReorderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, map[string]string{"Amul Butter": "4"}, req.Quantities)
		_ = json.NewEncoder(w).Encode(calcprotocol.OrderResponse{
			Text:      "01/06/2024\n1. Amul Butter - 4Packet\n",
			ShareLink: "https://wa.me/?text=x",
		})
	}, "order", "--share", "Amul Butter=4")
	require.NoError(t, err)

	assert.Equal(t, "01/06/2024\n1. Amul Butter - 4Packet\n\nhttps://wa.me/?text=x\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, func(w http.ResponseWriter, r *http.Request) {}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    dev")
}
