// Package form holds the handles a calculator is wired to. A presentation
// layer implements Field, Display and MessageBox over its own widgets; the
// in-memory types here back the HTTP API and the tests.
package form

import "sync"

type Tone string

const (
	ToneNone     Tone = ""
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
)

type Field interface {
	Text() string
	SetText(text string)
}

type Display interface {
	Show(text string, tone Tone)
}

// MessageBox shows at most one inline message. An empty message clears it.
type MessageBox interface {
	SetMessage(message string)
}

type TextField struct {
	text string
}

func NewTextField(text string) *TextField {
	return &TextField{text: text}
}

func (f *TextField) Text() string {
	return f.text
}

func (f *TextField) SetText(text string) {
	f.text = text
}

type Label struct {
	text string
	tone Tone
}

func (l *Label) Show(text string, tone Tone) {
	l.text = text
	l.tone = tone
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) Tone() Tone {
	return l.tone
}

type Message struct {
	text string
}

func (m *Message) SetMessage(message string) {
	m.text = message
}

func (m *Message) Text() string {
	return m.text
}

// Form is a named collection of in-memory handles. Handles are created on
// first use so a caller can wire a calculator from its Spec alone.
type Form struct {
	mux      sync.Mutex
	fields   map[string]*TextField
	displays map[string]*Label
	message  Message
}

func New() *Form {
	return &Form{
		fields:   make(map[string]*TextField),
		displays: make(map[string]*Label),
	}
}

func (f *Form) Field(name string) *TextField {
	f.mux.Lock()
	defer f.mux.Unlock()
	field, ok := f.fields[name]
	if !ok {
		field = &TextField{}
		f.fields[name] = field
	}
	return field
}

func (f *Form) Display(name string) *Label {
	f.mux.Lock()
	defer f.mux.Unlock()
	display, ok := f.displays[name]
	if !ok {
		display = &Label{}
		f.displays[name] = display
	}
	return display
}

func (f *Form) Message() *Message {
	return &f.message
}

func (f *Form) Texts() map[string]string {
	f.mux.Lock()
	defer f.mux.Unlock()
	res := make(map[string]string, len(f.fields))
	for name, field := range f.fields {
		res[name] = field.text
	}
	return res
}
