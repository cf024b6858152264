// Package seq compiles a small "diagrams-as-code" language into a rendered
// ASCII-art sequence diagram. The input names participants and directed
// messages between them; the output is a fixed-width Unicode picture with
// participant boxes, vertical lifelines, and labeled arrows.
//
// The pipeline has three stages: Parse turns source text into a Diagram,
// a Layout translates the Diagram into linear constraints and solves them
// for integer coordinates, and the solved scene is rasterised onto a text
// canvas. Transform runs all three. Output is a pure function of the
// input: identical source renders byte-identical frames on every platform.
package seq
