// ABOUTME: Entry point for fitness CLI.
// ABOUTME: Invokes the root Cobra command and reports failures on stderr.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/render"
)

func main() {
	err := Execute()
	closeStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString(render.Error(err)))
		os.Exit(1)
	}
}
