// Command bitdump encodes or decodes an XC6SLX9 frame-memory image from the
// command line, the bitstream-codec counterpart of the teacher's single
// entry-point binary.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xc6lx9/bitstream/chip"
	"github.com/xc6lx9/bitstream/codec"
	"github.com/xc6lx9/bitstream/config"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		decodeFile  = flag.String("decode", "", "Decode a raw frame-memory image from this file")
		outFile     = flag.String("out", "", "Write the encoded frame-memory image to this file")
		verboseMode = flag.Bool("verbose", false, "Verbose output")
		demoIOB     = flag.Bool("demo-iob", false, "Configure the first demo I/O site as O_used")
		demoLUT     = flag.String("demo-lut", "", "Set the first logic tile's X.D LUT to this boolean expression")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("bitdump %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *verboseMode {
		fmt.Printf("Chip variant: %s\n", cfg.Chip.Variant)
	}

	if *decodeFile != "" {
		runDecode(*decodeFile, *verboseMode)
		return
	}

	runEncode(*demoIOB, *demoLUT, *outFile, *verboseMode)
}

func runEncode(demoIOB bool, demoLUT, outFile string, verbose bool) {
	m := chip.NewXC6SLX9()

	if demoIOB {
		y, x, name := m.EnumIOB(0)
		dev := m.IOBDeviceAt(y, x)
		dev.Instantiated = true
		dev.OUsed = true
		if verbose {
			fmt.Printf("Configured I/O site %s as O_used\n", name)
		}
	}

	if demoLUT != "" {
		if y, x, ok := firstLogicTile(m); ok {
			dev := m.LogicDeviceAt(y, x, chip.LogicX)
			dev.Instantiated = true
			dev.SetLUT(chip.LUTD, demoLUT)
			if verbose {
				fmt.Printf("Set X.D at (y=%d,x=%d) to %q\n", y, x, demoLUT)
			}
		}
	}

	diag := &codec.Diagnostics{}
	buf, err := codec.WriteModel(m, diag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Encode error: %v\n", err)
		os.Exit(1)
	}
	printDiagnostics(diag, verbose)

	fmt.Printf("Encoded %d bytes\n", len(buf.Bytes()))
	if outFile != "" {
		if err := os.WriteFile(outFile, buf.Bytes(), 0644); err != nil { // #nosec G304 -- user-specified output path
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		if verbose {
			fmt.Printf("Wrote %s\n", outFile)
		}
	}
}

func runDecode(path string, verbose bool) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-specified input path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	m := chip.NewXC6SLX9()
	buf := codec.NewBuffer(m)
	if len(data) != len(buf.Bytes()) {
		fmt.Fprintf(os.Stderr, "Error: expected %d bytes, got %d\n", len(buf.Bytes()), len(data))
		os.Exit(1)
	}
	copy(buf.Bytes(), data)

	diag := &codec.Diagnostics{}
	if err := codec.ExtractModel(m, buf, diag); err != nil {
		fmt.Fprintf(os.Stderr, "Decode error: %v\n", err)
		os.Exit(1)
	}
	printDiagnostics(diag, verbose)

	fmt.Printf("I/O sites: %d\n", m.NumIOBs())
	for i := 0; i < m.NumIOBs(); i++ {
		y, x, name := m.EnumIOB(i)
		dev := m.IOBDeviceAt(y, x)
		if dev != nil && dev.Instantiated {
			fmt.Printf("  %s: O_used=%v I_mux=%v\n", name, dev.OUsed, dev.IMux)
		}
	}

	fmt.Printf("Nets: %d\n", m.NumNets())
}

func firstLogicTile(m *chip.Model) (y, x int, ok bool) {
	for y := 0; y < m.YHeight; y++ {
		for x := 0; x < m.XWidth; x++ {
			if m.HasDevice(y, x, chip.DevLogic) {
				return y, x, true
			}
		}
	}
	return 0, 0, false
}

func printDiagnostics(diag *codec.Diagnostics, verbose bool) {
	if diag.Empty() {
		if verbose {
			fmt.Println("No diagnostics")
		}
		return
	}
	fmt.Printf("%d diagnostic(s):\n", len(diag.Notes))
	for _, n := range diag.Notes {
		fmt.Printf("  %s\n", n)
	}
}

func printHelp() {
	fmt.Printf(`bitdump %s

Usage: bitdump [options]

Options:
  -help             Show this help message
  -version          Show version information
  -verbose          Enable verbose output
  -demo-iob         Configure the first demo I/O site as O_used
  -demo-lut EXPR    Set the first logic tile's X.D LUT to EXPR
  -out FILE         Write the encoded frame-memory image to FILE
  -decode FILE      Decode a raw frame-memory image from FILE instead of encoding

Examples:
  bitdump -demo-iob -demo-lut "A1*A2" -out demo.bit
  bitdump -decode demo.bit -verbose
`, Version)
}
