// Package cli implements the interactive text menu of Planetarium.
//
// A Session reads answers line by line from an io.Reader and writes prompts
// and results to an io.Writer, so it can run on a terminal or be driven by a
// script. Invalid numbers are asked again; expected failures such as an
// unknown identifier are reported and the menu comes back.
package cli
