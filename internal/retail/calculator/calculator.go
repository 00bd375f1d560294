package calculator

import (
	"errors"
	"fmt"
	"github.com/shopspring/decimal"
	"go-retail/internal/retail/form"
	"go-retail/internal/retail/validation"
)

var (
	ErrMissingHandle     = errors.New("missing handle")
	ErrUnknownCalculator = errors.New("unknown calculator")
)

type Handles struct {
	Inputs  map[string]form.Field
	Outputs map[string]form.Display
	Message form.MessageBox
}

// FormHandles wires every input and output of spec to handles of f.
func FormHandles(spec Spec, f *form.Form) Handles {
	h := Handles{
		Inputs:  make(map[string]form.Field, len(spec.Inputs)),
		Outputs: make(map[string]form.Display, len(spec.Outputs)),
		Message: f.Message(),
	}
	for _, in := range spec.Inputs {
		h.Inputs[in.Name] = f.Field(in.Name)
	}
	for _, out := range spec.Outputs {
		h.Outputs[out.Name] = f.Display(out.Name)
	}
	return h
}

type Calculator struct {
	spec    Spec
	handles Handles
}

func New(spec Spec, handles Handles) (*Calculator, error) {
	for _, in := range spec.Inputs {
		if handles.Inputs[in.Name] == nil {
			return nil, fmt.Errorf("%s: input %q: %w", spec.Name, in.Name, ErrMissingHandle)
		}
	}
	for _, out := range spec.Outputs {
		if handles.Outputs[out.Name] == nil {
			return nil, fmt.Errorf("%s: output %q: %w", spec.Name, out.Name, ErrMissingHandle)
		}
	}
	if handles.Message == nil {
		return nil, fmt.Errorf("%s: message box: %w", spec.Name, ErrMissingHandle)
	}
	return &Calculator{
		spec:    spec,
		handles: handles,
	}, nil
}

func (c *Calculator) Spec() Spec {
	return c.spec
}

// Recompute reads every owned field and overwrites every output.
func (c *Calculator) Recompute() {
	c.handles.Message.SetMessage("")

	in := Inputs{values: make(map[string]decimal.Decimal, len(c.spec.Inputs))}
	blocked := false
	message := ""
	for _, spec := range c.spec.Inputs {
		text := c.handles.Inputs[spec.Name].Text()
		switch spec.Kind {
		case Text:
			continue
		case Count:
			in.values[spec.Name] = validation.CountOrZero(text)
			continue
		}

		n := read(spec, text)
		switch {
		case n.IsValid():
			in.values[spec.Name] = n.Value()
		case !spec.Optional:
			blocked = true
		}
		if n.IsInvalid() && !spec.Quiet && message == "" {
			message = n.Message()
		}
	}

	if blocked {
		c.showBaseline()
		c.handles.Message.SetMessage(message)
		return
	}

	outcome, err := c.spec.Formula(in)
	if err != nil {
		c.showBaseline()
		c.handles.Message.SetMessage(validation.MessageOf(err))
		return
	}

	for _, out := range c.spec.Outputs {
		reading, ok := outcome.Readings[out.Name]
		if !ok {
			c.handles.Outputs[out.Name].Show(out.Format.Baseline(), form.ToneNone)
			continue
		}
		text := reading.Text
		if text == "" {
			text = out.Format.Render(reading.Value)
		}
		c.handles.Outputs[out.Name].Show(text, reading.Tone)
	}
	if outcome.Message != "" {
		message = outcome.Message
	}
	c.handles.Message.SetMessage(message)
}

// Reset clears every owned field and recomputes.
func (c *Calculator) Reset() {
	for _, in := range c.spec.Inputs {
		c.handles.Inputs[in.Name].SetText("")
	}
	c.Recompute()
}

func (c *Calculator) showBaseline() {
	for _, out := range c.spec.Outputs {
		c.handles.Outputs[out.Name].Show(out.Format.Baseline(), form.ToneNone)
	}
}

func read(spec InputSpec, text string) validation.Number {
	if spec.Kind == Whole {
		return validation.ParseWhole(text, spec.Label)
	}
	return validation.ParseReal(text, spec.Label)
}
