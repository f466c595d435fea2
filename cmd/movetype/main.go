// Package main implements the movetype CLI: a resolver that builds the
// complete field-type index of on-chain modules and prints it.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
