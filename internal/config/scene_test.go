package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"
)

const sceneTOML = `
seed = 7

[[textures]]
name = "brick"
format = "rgba8unorm"
records = 4

[[textures]]
name = "grass"
format = "bgra8unorm"
records = 6
`

const sceneYAML = `
seed: 7
textures:
  - name: brick
    format: rgba8unorm
    records: 4
  - name: grass
    format: bgra8unorm
    records: 6
`

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		fileType string
	}{
		{"toml", sceneTOML, "toml"},
		{"yaml", sceneYAML, "yaml"},
		{"yml", sceneYAML, "YML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.data), tt.fileType)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if s.Seed != 7 {
				t.Errorf("Seed = %d, want 7", s.Seed)
			}
			if len(s.Textures) != 2 || s.Textures[1].Name != "grass" || s.Textures[1].Format != "bgra8unorm" {
				t.Errorf("Textures = %+v", s.Textures)
			}
			if s.TotalRecords() != 10 {
				t.Errorf("TotalRecords() = %d, want 10", s.TotalRecords())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		fileType string
		want     error
	}{
		{"unknown type", sceneTOML, "json", ErrUnknownFileType},
		{"no textures", "seed = 1\n", "toml", ErrInvalidScene},
		{"unknown toml key", "seed = 1\ncolour = 3\n[[textures]]\nname = \"a\"\n", "toml", ErrInvalidScene},
		{"duplicate", "textures:\n  - name: a\n  - name: a\n", "yaml", ErrInvalidScene},
		{"no name", "textures:\n  - records: 2\n", "yaml", ErrInvalidScene},
		{"negative", "textures:\n  - name: a\n    records: -1\n", "yaml", ErrInvalidScene},
		{"bad format", "textures:\n  - name: a\n    format: dxt5\n", "yaml", ErrInvalidScene},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.fileType)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseYAMLUnknownField(t *testing.T) {
	if _, err := Parse([]byte("textures:\n  - name: a\n    colour: red\n"), "yaml"); err == nil {
		t.Error("Parse() accepted an unknown YAML field")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte(sceneTOML), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.TotalRecords() != 10 {
		t.Errorf("TotalRecords() = %d, want 10", s.TotalRecords())
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if len(s.Textures) != 3 || s.TotalRecords() != 30 {
		t.Errorf("Default() = %d textures, %d records; want 3, 30", len(s.Textures), s.TotalRecords())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    gputypes.TextureFormat
		wantErr bool
	}{
		{"", gputypes.TextureFormatRGBA8Unorm, false},
		{"RGBA8Unorm", gputypes.TextureFormatRGBA8Unorm, false},
		{"bgra8unorm", gputypes.TextureFormatBGRA8Unorm, false},
		{"r8unorm", gputypes.TextureFormatR8Unorm, false},
		{"rgba16float", gputypes.TextureFormatRGBA16Float, false},
		{"bc7", gputypes.TextureFormatUndefined, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
