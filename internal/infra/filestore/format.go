package filestore

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tasklist/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format names a persisted layout.
type Format string

// Supported formats.
const (
	FormatAuto   Format = ""       // Choose from the file extension
	FormatRecord Format = "record" // One tab separated record per line
	FormatTOML   Format = "toml"   // [[tasks]] array
	FormatYAML   Format = "yaml"   // tasks: list
)

// ParseFormat converts a configured format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatRecord, FormatTOML, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt", "text":
		return FormatRecord, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, s)
}

// FormatForPath resolves FormatAuto from the extension of path.
func FormatForPath(path string, f Format) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatRecord
	}
}

// codec converts between a stream and a collection.
type codec interface {
	decode(r io.Reader, tasks *domain.TaskCollection) error
	encode(w io.Writer, tasks *domain.TaskCollection) error
}

func codecFor(f Format) (codec, error) {
	switch f {
	case FormatRecord:
		return recordCodec{}, nil
	case FormatTOML:
		return tomlCodec{}, nil
	case FormatYAML:
		return yamlCodec{}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, f)
}

type recordCodec struct{}

func (recordCodec) decode(r io.Reader, tasks *domain.TaskCollection) error {
	_, err := tasks.ReadFrom(r)
	return err
}

func (recordCodec) encode(w io.Writer, tasks *domain.TaskCollection) error {
	if _, err := io.WriteString(w, domain.RecordHeader+"\n"); err != nil {
		return err
	}
	_, err := tasks.WriteTo(w)
	return err
}

// document is the structured layout shared by TOML and YAML files.
type document struct {
	Tasks []*domain.Task `toml:"tasks" yaml:"tasks"`
}

func fill(tasks *domain.TaskCollection, doc document) error {
	tasks.Clear()
	for i, t := range doc.Tasks {
		if t == nil {
			return fmt.Errorf("%w: entry %d is empty", domain.ErrInvalidRecord, i)
		}
		tasks.Add(t)
	}
	return nil
}

type tomlCodec struct{}

func (tomlCodec) decode(r io.Reader, tasks *domain.TaskCollection) error {
	var doc document
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}
	return fill(tasks, doc)
}

// TOML strings must be valid UTF-8; go-toml writes invalid bytes through and
// the result no longer parses.
func (tomlCodec) encode(w io.Writer, tasks *domain.TaskCollection) error {
	for i, t := range tasks.Tasks() {
		if !utf8.ValidString(t.Description) {
			return fmt.Errorf("task %d: description is not valid UTF-8", i)
		}
	}
	return toml.NewEncoder(w).Encode(document{Tasks: tasks.Tasks()})
}

type yamlCodec struct{}

func (yamlCodec) decode(r io.Reader, tasks *domain.TaskCollection) error {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}
	return fill(tasks, doc)
}

func (yamlCodec) encode(w io.Writer, tasks *domain.TaskCollection) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Tasks: tasks.Tasks()}); err != nil {
		return err
	}
	return enc.Close()
}
