package tui

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Param is one submitted name/value pair.
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Submission is the request a browser would send for the answered form.
// Params keep document order, so the method override and anti-forgery token
// lead as they do in the markup.
type Submission struct {
	Action string  `json:"action"`
	Method string  `json:"method"`
	Params []Param `json:"params"`
}

// Add appends a pair.
func (s *Submission) Add(name, value string) {
	s.Params = append(s.Params, Param{Name: name, Value: value})
}

// Get returns every value submitted under name.
func (s Submission) Get(name string) []string {
	var out []string
	for _, param := range s.Params {
		if param.Name == name {
			out = append(out, param.Value)
		}
	}
	return out
}

// Values returns the params as url.Values.
func (s Submission) Values() url.Values {
	values := make(url.Values, len(s.Params))
	for _, param := range s.Params {
		values.Add(param.Name, param.Value)
	}
	return values
}

// Encode renders the params as an application/x-www-form-urlencoded body
// without reordering them.
func (s Submission) Encode() string {
	pairs := make([]string, 0, len(s.Params))
	for _, param := range s.Params {
		pairs = append(pairs, url.QueryEscape(param.Name)+"="+url.QueryEscape(param.Value))
	}
	return strings.Join(pairs, "&")
}

func (s Submission) pretty() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.Method, s.Action)
	for _, param := range s.Params {
		fmt.Fprintf(&b, "%s=%s\n", param.Name, param.Value)
	}
	return b.String()
}

func (s Submission) json() ([]byte, error) {
	return json.Marshal(s)
}
