package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/formfile"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

type violation struct {
	file     string
	location string
	message  string
}

func lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check form definitions for errors",
		Long: `Lint parses each definition, validates every field and resolves the
form target. Directories are searched for .yaml and .yml files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(args, cmd.ErrOrStderr())
		},
	}
}

func runLint(paths []string, stderr io.Writer) error {
	files, err := collectDefinitions(paths)
	if err != nil {
		return err
	}

	var violations []violation
	for _, path := range files {
		linted, err := lintFile(path)
		if err != nil {
			return fmt.Errorf("lint %s: %w", path, err)
		}
		slog.Debug("linted definition", "path", path, "violations", len(linted))
		violations = append(violations, linted...)
	}

	if len(violations) == 0 {
		return nil
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			if violations[i].location == violations[j].location {
				return violations[i].message < violations[j].message
			}
			return violations[i].location < violations[j].location
		}
		return violations[i].file < violations[j].file
	})
	for _, v := range violations {
		fmt.Fprintf(stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
	}
	return fmt.Errorf("%d violation(s) in %d file(s)", len(violations), len(files))
}

func collectDefinitions(paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".yaml", ".yml":
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func lintFile(path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	def, err := formfile.Parse(raw)
	if err != nil {
		return []violation{{file: path, location: "document", message: err.Error()}}, nil
	}

	var (
		violations []violation
		valid      = true
		seen       = make(map[string]int)
	)
	report := func(location, message string) {
		violations = append(violations, violation{file: path, location: location, message: message})
	}

	for idx, field := range def.Fields {
		location := fmt.Sprintf("fields[%d]", idx)
		spec, err := field.Spec()
		if err != nil {
			valid = false
			report(location, err.Error())
			continue
		}
		switch spec.Kind {
		case model.FieldKindLabel, model.FieldKindRadio, model.FieldKindSubmit:
			continue
		}
		key := string(spec.Kind) + ":" + spec.Path.String()
		if first, ok := seen[key]; ok {
			report(location, fmt.Sprintf("duplicate %s field %q, first declared at fields[%d]", spec.Kind, spec.Path.String(), first))
			continue
		}
		seen[key] = idx
	}

	if strings.TrimSpace(def.Model) == "" && (def.Values != nil || def.Record != nil) {
		report("model", "values are bound without a model; field names stay unscoped and the record has no resource")
	}

	if _, err := def.Target(); err != nil {
		report("target", err.Error())
		return violations, nil
	}
	if !valid {
		return violations, nil
	}

	// Any symbol resolves here; route tables are a render-time concern.
	opts := render.RenderOptions{
		URLResolver: render.URLResolverFunc(func(symbol string) (string, error) {
			return "/" + symbol, nil
		}),
	}
	if _, err := def.Render(opts); err != nil {
		report("render", err.Error())
	}
	return violations, nil
}
