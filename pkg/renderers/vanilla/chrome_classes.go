package vanilla

// ChromeClass is a typed identifier for the CSS classes the vanilla templates
// put around the core markup.
type ChromeClass string

const (
	ClassForm    ChromeClass = "fb-form"
	ClassField   ChromeClass = "fb-field"
	ClassActions ChromeClass = "fb-actions"
	ClassErrors  ChromeClass = "fb-errors"
	ClassMessage ChromeClass = "fb-message"
)

// Classes overrides the chrome classes. Empty entries keep the defaults.
type Classes struct {
	Form    string `json:"form"`
	Field   string `json:"field"`
	Actions string `json:"actions"`
	Errors  string `json:"errors"`
	Message string `json:"message"`
}

// DefaultClasses returns the built-in chrome classes.
func DefaultClasses() Classes {
	return Classes{
		Form:    string(ClassForm),
		Field:   string(ClassField),
		Actions: string(ClassActions),
		Errors:  string(ClassErrors),
		Message: string(ClassMessage),
	}
}

func (c Classes) withDefaults() Classes {
	defaults := DefaultClasses()
	if c.Form == "" {
		c.Form = defaults.Form
	}
	if c.Field == "" {
		c.Field = defaults.Field
	}
	if c.Actions == "" {
		c.Actions = defaults.Actions
	}
	if c.Errors == "" {
		c.Errors = defaults.Errors
	}
	if c.Message == "" {
		c.Message = defaults.Message
	}
	return c
}
