// Package config loads scene descriptions for the statesort command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFileType is returned for scene files that are neither TOML nor YAML.
	ErrUnknownFileType = errors.New("config: unknown scene file type")

	// ErrInvalidScene is returned when a scene fails validation.
	ErrInvalidScene = errors.New("config: invalid scene")
)

// Scene describes the textures of a demo frame and how many records use each.
type Scene struct {
	Seed     uint64    `toml:"seed" yaml:"seed"`
	Textures []Texture `toml:"textures" yaml:"textures"`
}

// Texture is one texture of a scene.
type Texture struct {
	Name    string `toml:"name" yaml:"name"`
	Format  string `toml:"format" yaml:"format"` // rgba8unorm | bgra8unorm | r8unorm | rgba16float
	Records int    `toml:"records" yaml:"records"`
}

// Default returns the classic scene: three textures with ten records each.
func Default() *Scene {
	return &Scene{
		Seed: 1,
		Textures: []Texture{
			{Name: "tex1", Format: "rgba8unorm", Records: 10},
			{Name: "tex2", Format: "rgba8unorm", Records: 10},
			{Name: "tex3", Format: "rgba8unorm", Records: 10},
		},
	}
}

// TotalRecords returns the number of records the scene produces.
func (s *Scene) TotalRecords() int {
	n := 0
	for _, t := range s.Textures {
		n += t.Records
	}
	return n
}

// Load reads a scene from a .toml, .yaml or .yml file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	s, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene. fileType is "toml", "yaml" or "yml".
func Parse(data []byte, fileType string) (*Scene, error) {
	s := &Scene{}
	switch strings.ToLower(fileType) {
	case "toml":
		md, err := toml.Decode(string(data), s)
		if err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidScene, undecoded[0].String())
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(strings.NewReader(string(data)))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFileType, fileType)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks names, formats and record counts.
func (s *Scene) Validate() error {
	if len(s.Textures) == 0 {
		return fmt.Errorf("%w: no textures", ErrInvalidScene)
	}
	seen := make(map[string]bool, len(s.Textures))
	for i, t := range s.Textures {
		if t.Name == "" {
			return fmt.Errorf("%w: texture %d has no name", ErrInvalidScene, i)
		}
		if seen[t.Name] {
			return fmt.Errorf("%w: duplicate texture %q", ErrInvalidScene, t.Name)
		}
		seen[t.Name] = true
		if t.Records < 0 {
			return fmt.Errorf("%w: texture %q has negative record count", ErrInvalidScene, t.Name)
		}
		if _, err := ParseFormat(t.Format); err != nil {
			return fmt.Errorf("%w: texture %q: %w", ErrInvalidScene, t.Name, err)
		}
	}
	return nil
}

var formats = map[string]gputypes.TextureFormat{
	"rgba8unorm":  gputypes.TextureFormatRGBA8Unorm,
	"bgra8unorm":  gputypes.TextureFormatBGRA8Unorm,
	"r8unorm":     gputypes.TextureFormatR8Unorm,
	"rgba16float": gputypes.TextureFormatRGBA16Float,
}

// ParseFormat maps a scene format name to a texture format.
// The empty string selects rgba8unorm.
func ParseFormat(name string) (gputypes.TextureFormat, error) {
	if name == "" {
		return gputypes.TextureFormatRGBA8Unorm, nil
	}
	f, ok := formats[strings.ToLower(name)]
	if !ok {
		return gputypes.TextureFormatUndefined, fmt.Errorf("unknown texture format %q", name)
	}
	return f, nil
}
