/*
CLI for drawing and exporting PDF regions
*/
package main

import (
	"github.com/pyhub-apps/pdfregion/cmd/pdfregion/commands"
)

func main() {
	commands.Execute()
}
