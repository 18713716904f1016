// Command jtc is a walk-path driven JSON processor: point it at a JSON
// document and one or more walk-paths to print, insert, update, purge,
// swap or compare matched values.
//
// Grounded on the teacher's cmd/shake/main.go entry-point shape (parse
// flags, resolve input, hand off to the library, write output), adapted
// to cobra/pflag in place of the teacher's stdlib flag package per the
// CLI surface this tool exposes (see internal/driver).
package main

import (
	"os"

	"github.com/mibar/jtc/internal/driver"
)

func main() {
	d := driver.New(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(d.Run(os.Args[1:]))
}
