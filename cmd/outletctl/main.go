// Command outletctl works with the onboarding board from a terminal: an
// interactive board, CSV export, analytics and listing.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewCLI(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
