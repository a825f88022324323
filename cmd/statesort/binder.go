package main

import (
	"fmt"
	"io"

	"github.com/gogpu/statesort"
)

// printBinder simulates a renderer by printing each draw and whether the
// texture had to change for it.
type printBinder struct {
	w       io.Writer
	current *statesort.Resource
	changed bool
}

func newPrintBinder(w io.Writer) *printBinder {
	return &printBinder{w: w}
}

func (b *printBinder) Bind(slot statesort.Slot, r *statesort.Resource) error {
	if slot == statesort.SlotTexture {
		b.current = r
		b.changed = true
	}
	return nil
}

func (b *printBinder) Draw(*statesort.Record) error {
	msg := "Texture unchanged... do nothing."
	if b.changed {
		msg = "Texture changed... MODIFY STATE!"
	}
	b.changed = false
	_, err := fmt.Fprintf(b.w, "Render geometry using texture %v - %s\n", b.current, msg)
	return err
}
