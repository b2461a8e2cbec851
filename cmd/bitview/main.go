// Command bitview is a read-only tcell/tview inspector over a decoded
// device model: I/O sites, logic tiles, and routing switches, adapted from
// the teacher's debugger TUI panel layout but with no command input, since
// this tool never mutates the model it displays.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xc6lx9/bitstream/chip"
	"github.com/xc6lx9/bitstream/codec"
)

func main() {
	var (
		decodeFile = flag.String("decode", "", "Decode and inspect a raw frame-memory image from this file")
	)
	flag.Parse()

	m := chip.NewXC6SLX9()
	var diag codec.Diagnostics

	if *decodeFile != "" {
		data, err := os.ReadFile(*decodeFile) // #nosec G304 -- user-specified input path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *decodeFile, err)
			os.Exit(1)
		}
		buf := codec.NewBuffer(m)
		if len(data) != len(buf.Bytes()) {
			fmt.Fprintf(os.Stderr, "Error: expected %d bytes, got %d\n", len(buf.Bytes()), len(data))
			os.Exit(1)
		}
		copy(buf.Bytes(), data)
		if err := codec.ExtractModel(m, buf, &diag); err != nil {
			fmt.Fprintf(os.Stderr, "Decode error: %v\n", err)
			os.Exit(1)
		}
	}

	tui := NewTUI(m, &diag)
	if err := tui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}
