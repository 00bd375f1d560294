package service

import (
	"context"
	"fmt"
	"go-retail/internal/retail/calculator"
	"go-retail/internal/retail/form"
	"go-retail/pkg/logging"
	"go.uber.org/zap"
)

type Output struct {
	Text string
	Tone form.Tone
}

type Result struct {
	Calculator string
	Inputs     map[string]string
	Outputs    map[string]Output
	Order      []string
	Message    string
}

// Calculators runs one calculator per call on a fresh in-memory form.
type Calculators struct {
	set    *calculator.Set
	logger *logging.ZapLogger
}

func NewCalculators(set *calculator.Set, logger *logging.ZapLogger) *Calculators {
	return &Calculators{
		set:    set,
		logger: logger,
	}
}

func (c *Calculators) List() []calculator.Spec {
	return c.set.Specs()
}

func (c *Calculators) Calculate(ctx context.Context, name string, inputs map[string]string) (Result, error) {
	return c.run(ctx, name, inputs, (*calculator.Calculator).Recompute)
}

// Reset returns the calculator as it looks with every input cleared. The
// inputs are still checked against the calculator's fields.
func (c *Calculators) Reset(ctx context.Context, name string, inputs map[string]string) (Result, error) {
	return c.run(ctx, name, inputs, (*calculator.Calculator).Reset)
}

func (c *Calculators) run(
	ctx context.Context,
	name string,
	inputs map[string]string,
	action func(*calculator.Calculator),
) (Result, error) {
	ctx = logging.WithContextFields(ctx, zap.String("calculator", name))

	spec, err := c.set.Spec(name)
	if err != nil {
		return Result{}, err
	}
	if err := checkFields(spec, inputs); err != nil {
		return Result{}, err
	}

	f := form.New()
	calc, err := calculator.New(spec, calculator.FormHandles(spec, f))
	if err != nil {
		return Result{}, fmt.Errorf("failed to build calculator: %w", err)
	}
	for field, text := range inputs {
		f.Field(field).SetText(text)
	}
	action(calc)

	res := Result{
		Calculator: spec.Name,
		Inputs:     f.Texts(),
		Outputs:    make(map[string]Output, len(spec.Outputs)),
		Order:      make([]string, 0, len(spec.Outputs)),
		Message:    f.Message().Text(),
	}
	for _, out := range spec.Outputs {
		label := f.Display(out.Name)
		res.Outputs[out.Name] = Output{Text: label.Text(), Tone: label.Tone()}
		res.Order = append(res.Order, out.Name)
	}
	if res.Message != "" {
		c.logger.DebugCtx(ctx, "calculator reported a message", zap.String("message", res.Message))
	}
	return res, nil
}

func checkFields(spec calculator.Spec, inputs map[string]string) error {
	known := make(map[string]struct{}, len(spec.Inputs))
	for _, in := range spec.Inputs {
		known[in.Name] = struct{}{}
	}
	for field := range inputs {
		if _, ok := known[field]; !ok {
			return fmt.Errorf("%s has no field %q: %w", spec.Name, field, ErrUnknownField)
		}
	}
	return nil
}
