// Package naming derives HTML name and id attributes from a model name and an
// attribute path, and maps model names to the URL segments used by record
// identification.
package naming
