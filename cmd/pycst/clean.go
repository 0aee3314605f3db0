package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pycst/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the on-disk token cache",
	Long:  "Remove every cached token stream written by tokenize --cached.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	cache, err := driver.OpenTokenCache("pycst")
	if err != nil {
		return fmt.Errorf("failed to open token cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop token cache: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, "token cache removed")
	return nil
}
