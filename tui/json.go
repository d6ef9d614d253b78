package tui

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// JSONPresenter renders output as JSON.
type JSONPresenter struct {
	w       io.Writer
	encoder *jsoniter.Encoder
}

// NewJSONPresenter creates a new JSON presenter.
func NewJSONPresenter(opts PresenterOptions) *JSONPresenter {
	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(opts.Writer)
	encoder.SetIndent("", "  ")
	return &JSONPresenter{
		w:       opts.Writer,
		encoder: encoder,
	}
}

// RenderHeader renders the header strip and its fragments as JSON.
func (p *JSONPresenter) RenderHeader(header *HeaderView) error {
	return p.encoder.Encode(header)
}

// RenderDoctor renders the doctor check results as JSON.
func (p *JSONPresenter) RenderDoctor(result *DoctorView) error {
	return p.encoder.Encode(result)
}

// RenderConfig renders the configuration as JSON.
func (p *JSONPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderError renders an error as JSON.
func (p *JSONPresenter) RenderError(err error) error {
	return p.encoder.Encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a message as JSON.
func (p *JSONPresenter) RenderMessage(message string) error {
	return p.encoder.Encode(map[string]string{"message": message})
}

// Ensure JSONPresenter implements Presenter
var _ Presenter = (*JSONPresenter)(nil)
