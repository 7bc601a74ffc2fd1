// cubeview - interactive 3-D Rubik's cube viewer for the terminal.
package main

import (
	"github.com/SeamusWaldron/cubeview/internal/cli"
)

func main() {
	cli.Execute()
}
