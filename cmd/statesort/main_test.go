package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/statesort"
)

func TestRunDefaultScene(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(nil, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v\nstderr: %s", err, stderr.String())
	}
	out := stdout.String()

	for _, want := range []string{
		"-- Simulated rendering before sorting --",
		"-- Simulated rendering after sorting --",
		"30 records, 3 textures",
		"3 after (3 runs)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	after := out[strings.Index(out, "after sorting"):]
	if got := strings.Count(after, "MODIFY STATE!"); got != 3 {
		t.Errorf("texture changes after sorting = %d, want 3", got)
	}
	if got := strings.Count(out, "Render geometry using texture"); got != 60 {
		t.Errorf("draw lines = %d, want 60", got)
	}
}

func TestRunQuiet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-quiet", "-seed", "99"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.Contains(stdout.String(), "Render geometry") {
		t.Error("-quiet should suppress per-draw lines")
	}
	if !strings.Contains(stdout.String(), "30 records") {
		t.Errorf("summary missing from quiet output: %q", stdout.String())
	}
}

func TestRunSceneFileAndPNG(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.yaml")
	data := "seed: 3\ntextures:\n  - name: a\n    records: 5\n  - name: b\n    format: bgra8unorm\n    records: 7\n"
	if err := os.WriteFile(scene, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	pngPath := filepath.Join(dir, "strip.png")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-scene", scene, "-png", pngPath, "-quiet", "-v"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "12 records, 2 textures") {
		t.Errorf("unexpected summary: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "statesort: submit") {
		t.Error("-v should log submit diagnostics to stderr")
	}

	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if w := img.Bounds().Dx(); w != labelW+12*cellW+padding {
		t.Errorf("strip width = %d, want %d", w, labelW+12*cellW+padding)
	}
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-scene", filepath.Join(t.TempDir(), "none.toml")}, &stdout, &stderr); err == nil {
		t.Error("run() with a missing scene returned nil error")
	}
	if err := run([]string{"-nosuchflag"}, &stdout, &stderr); err == nil {
		t.Error("run() with an unknown flag returned nil error")
	}
}

func TestPrintBinder(t *testing.T) {
	var buf bytes.Buffer
	b := newPrintBinder(&buf)
	tex := statesort.NewTexture("wall", 0)
	rec := statesort.NewRecord(statesort.NewState(tex))

	_ = b.Bind(statesort.SlotTexture, tex)
	_ = b.Draw(rec)
	_ = b.Draw(rec)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[0], "MODIFY STATE!") || !strings.HasSuffix(lines[1], "do nothing.") {
		t.Errorf("unexpected lines: %q", lines)
	}
	if !strings.Contains(lines[0], "(wall)") {
		t.Errorf("line should name the texture: %q", lines[0])
	}
}

func TestRenderStripEmpty(t *testing.T) {
	img := renderStrip(nil, nil)
	if img.Bounds().Dx() != labelW+cellW+padding {
		t.Errorf("empty strip width = %d", img.Bounds().Dx())
	}
}
