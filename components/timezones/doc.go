// Package timezones exposes the embedded IANA zone list as a select option
// source and serves a JSON search endpoint for typeahead inputs.
//
// The handler responds to GET and HEAD requests. Results use the same option
// descriptors the select helper renders, so a client can swap them into the
// <select> verbatim. The zone list lives in data/iana_timezones.txt.
package timezones
