// Package main provides the entry point for AxiSim.
// AxiSim is an AXI trace-replay testbench built on Akita: a banked memory
// model, an AXI RAM slave, and a replay master that verifies read responses.
//
// For the full CLI, use: go run ./cmd/axisim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("AxiSim - AXI Trace Replay Testbench")
	fmt.Println("Built on Akita simulation framework")
	fmt.Println("")
	fmt.Println("Usage: axisim [options] <trace.csv>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config    Path to system configuration JSON file")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/axisim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/axisim' instead.")
	}
}
