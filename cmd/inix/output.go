package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/KimNorgaard/go-inix"
)

var (
	okColor     = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed)
	pathColor   = color.New(color.Bold)
	insertColor = color.New(color.FgGreen)
	deleteColor = color.New(color.FgRed)
)

// printErrors writes one line per error recorded on doc.
func printErrors(w io.Writer, path string, doc *inix.Document) {
	for _, msg := range doc.Errors() {
		fmt.Fprintf(w, "%s: %s\n", pathColor.Sprint(path), errorColor.Sprint(msg))
	}
}
