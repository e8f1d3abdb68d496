// Package layoutfile reads layout documents from disk.
//
// Every format shares one document shape: an optional name and a layout
// description under "layout".
//
//	name: editor
//	layout:
//	  split: horizontal
//	  panes:
//	    - [effects, preview]
//	    - console
package layoutfile

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gopkg.in/yaml.v3"

	"supertab/internal/layout"
	"supertab/internal/logging"
	"supertab/internal/telemetry"
)

//go:embed default.yaml
var defaultDocument []byte

// Format is a layout document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for file extensions Load does not know.
var ErrUnsupportedFormat = errors.New("unsupported layout format")

// ErrMissingLayout is returned when a document has no "layout" key.
var ErrMissingLayout = errors.New("document has no layout")

// Document is a decoded and expanded layout document.
type Document struct {
	Name     string
	Source   string // file path, or "default" for the bundled layout
	Raw      any    // the layout description as decoded
	Contents layout.Contents
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads, parses and expands the layout document at path.
func Load(ctx context.Context, path string) (Document, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "layoutfile.Load")
	defer span.End()
	span.SetAttributes(attribute.String("layout.path", path))

	doc, err := load(ctx, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Document{}, err
	}
	span.SetAttributes(
		attribute.String("layout.name", doc.Name),
		attribute.Int("layout.tabs", layout.TabCount(doc.Contents)),
	)
	return doc, nil
}

func load(ctx context.Context, path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read layout: %w", err)
	}
	doc, err := Decode(ctx, data, format)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path
	logging.New("layoutfile").Debug("loaded layout", "path", path, "name", doc.Name, "format", format)
	return doc, nil
}

// Default returns the bundled editor layout.
func Default(ctx context.Context) Document {
	doc, err := Decode(ctx, defaultDocument, FormatYAML)
	if err != nil {
		// Embedded at compile time and covered by tests.
		panic(fmt.Sprintf("layoutfile: bundled layout: %v", err))
	}
	doc.Source = "default"
	return doc
}

// Decode parses a document in the given format and expands its layout.
func Decode(ctx context.Context, data []byte, format Format) (Document, error) {
	_, span := telemetry.Tracer().Start(ctx, "layoutfile.Decode")
	defer span.End()
	span.SetAttributes(attribute.String("layout.format", string(format)))

	doc := map[string]any{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return Document{}, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	raw, ok := doc["layout"]
	if !ok {
		return Document{}, ErrMissingLayout
	}
	contents, err := layout.ExpandRaw(raw)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Name:     layout.ToString(doc["name"]),
		Raw:      raw,
		Contents: contents,
	}, nil
}
