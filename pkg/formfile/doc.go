// Package formfile loads YAML form definitions: the target, the bound record
// values and the ordered field list a form is rendered from. The CLI renders
// these files; applications can embed them to keep form layouts out of code.
package formfile
