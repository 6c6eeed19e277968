// Package main is the entry point for the calc-tax-salary-kz CLI.
package main

import (
	"os"

	"github.com/dotpep/calc-tax-salary-kz/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
