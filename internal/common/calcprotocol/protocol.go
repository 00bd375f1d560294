package calcprotocol

type Input struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Optional bool   `json:"optional,omitempty"`
}

type Calculator struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Inputs  []Input  `json:"inputs"`
	Outputs []string `json:"outputs"`
}

type CalculateRequest struct {
	Inputs map[string]string `json:"inputs"`
}

type Output struct {
	Text string `json:"text"`
	Tone string `json:"tone,omitempty"`
}

type CalculateResponse struct {
	Calculator string            `json:"calculator"`
	Inputs     map[string]string `json:"inputs"`
	Outputs    map[string]Output `json:"outputs"`
	Order      []string          `json:"order"`
	Message    string            `json:"message,omitempty"`
}

type Product struct {
	Name      string  `json:"name"`
	UnitType  string  `json:"unit_type"`
	UnitValue float64 `json:"unit_value"`
	UnitPrice float64 `json:"unit_price"`
}

type ReorderRequest struct {
	Quantities map[string]string `json:"quantities"`
}

type RowTotal struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Cost     string `json:"cost"`
}

type ReorderTotals struct {
	Rows       []RowTotal `json:"rows"`
	GrandTotal string     `json:"grand_total"`
}

type OrderResponse struct {
	Text      string `json:"text"`
	ShareLink string `json:"share_link"`
	Notice    string `json:"notice"`
}

type Notice struct {
	Message string `json:"message"`
}
