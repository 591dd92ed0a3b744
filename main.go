package main

import (
	"fmt"
	"os"

	"github.com/BerryBytes/tempcredsctl/cmd/root"
)

func main() {
	if err := root.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
