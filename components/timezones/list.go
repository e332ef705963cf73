package timezones

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

//go:embed data/iana_timezones.txt
var dataFS embed.FS

const defaultListPath = "data/iana_timezones.txt"

var loadDefault = sync.OnceValues(func() ([]string, error) {
	f, err := dataFS.Open(defaultListPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return LoadZones(f)
})

// DefaultZones returns a copy of the embedded zone list, sorted.
func DefaultZones() ([]string, error) {
	zones, err := loadDefault()
	if err != nil {
		return nil, err
	}
	return append([]string{}, zones...), nil
}

// LoadZones reads one zone per line, skipping blanks, comments and
// duplicates.
func LoadZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("timezones: missing reader")
	}

	scanner := bufio.NewScanner(r)
	zones := make([]string, 0, 512)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		zones = append(zones, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Strings(zones)
	return zones, nil
}

// Source turns zones into a scalar option source.
func Source(zones []string) model.OptionSource {
	values := make([]any, len(zones))
	for i, zone := range zones {
		values[i] = zone
	}
	return model.Scalars(values...)
}

// Select returns a select field listing every embedded zone. Extra options
// (prompt, attrs) are applied after the option source.
func Select(attribute string, options ...render.FieldOption) (model.FieldSpec, error) {
	zones, err := DefaultZones()
	if err != nil {
		return model.FieldSpec{}, fmt.Errorf("timezones: %w", err)
	}
	options = append([]render.FieldOption{render.WithOptionSource(Source(zones))}, options...)
	return render.Spec(model.FieldKindSelect, attribute, options...), nil
}
