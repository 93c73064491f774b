// Package turtle provides drawing surfaces for the interpreter: a Recorder
// that keeps the exact call sequence, and a Canvas that rasterizes strokes
// into an RGBA image.
package turtle
