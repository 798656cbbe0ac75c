// ABOUTME: Entry point for facerec CLI
// ABOUTME: Command-line client for the facial recognition authentication service

package main

import (
	"fmt"
	"os"

	"github.com/markalston/facerec-auth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
