package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a profile file format.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
	formatUnknown
)

// formatForPath maps a file extension to its format.
func formatForPath(path string) Format {
	switch filepath.Ext(path) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return formatUnknown
	}
}

// Load reads a profile from path, with the format chosen by extension
// (.toml, .yaml, .yml). A missing file is not an error; the default
// profile is returned. Loaded fields are merged over the defaults, so a
// partial file only overrides what it names.
func Load(path string) (Profile, error) {
	format := formatForPath(path)
	if format == formatUnknown {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}

	return parse(path, data, format)
}

// LoadReader reads a profile in the given format from r.
func LoadReader(r io.Reader, format Format) (Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}

	return parse("<reader>", data, format)
}

// parse unmarshals data over the default profile and validates the result.
func parse(source string, data []byte, format Format) (Profile, error) {
	p := Default()

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &p)
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	default:
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownFormat, source)
	}
	if err != nil {
		return Profile{}, &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}

	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", source, err)
	}

	return p, nil
}
