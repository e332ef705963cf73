package tui

// OutputFormat controls how the collected submission is serialized.
type OutputFormat string

const (
	// OutputFormatFormURLEncoded emits the body a browser would POST.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatJSON emits the target and ordered params as JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits one name=value pair per line.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// SubmitTransformer mutates the collected submission before serialization.
type SubmitTransformer func(Submission) (Submission, error)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithSubmitTransformer lets callers adjust the collected submission prior to
// serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}
