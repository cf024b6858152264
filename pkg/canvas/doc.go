// Package canvas provides a fixed-size grid of text cells for composing
// ASCII-art output. Each cell holds exactly one extended grapheme cluster,
// so multi-byte characters occupy a single cell and can be overwritten
// cleanly. Drawing is bounds-checked: blits either succeed completely or
// fail without modifying the grid. Sub-region views rebase the drawing
// origin and enforce tighter bounds on further blits.
package canvas
