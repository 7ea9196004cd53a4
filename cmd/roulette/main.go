// Package main is the entry point for the gitlab-roulette CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/remip/gitlab-roulette/internal/cli"
	"github.com/remip/gitlab-roulette/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

// Exit codes. Configuration problems get their own status so wrappers
// can tell them apart from run failures.
const (
	exitFailure = 1
	exitConfig  = 2
)

func main() {
	rootCmd := cli.NewRootCommand(nil, version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, domain.ErrConfig) {
			os.Exit(exitConfig)
		}
		os.Exit(exitFailure)
	}
}
