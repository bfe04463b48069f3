// Package main is the entry point for the textbook-rsa-cli application.
// It evaluates textbook RSA from raw key parameters and exits with a non-zero
// status whenever the evaluation is rejected.
package main

import (
	"os"

	commands "github.com/MGTheTrain/textbook-rsa/cmd/textbook-rsa-cli/internal/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
