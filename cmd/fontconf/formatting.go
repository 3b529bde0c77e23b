package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// printHeader prints a section header, bold when stdout is a terminal
func printHeader(s string) {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Println(pterm.Bold.Sprint(s))
		return
	}
	fmt.Println(s)
}
