package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pycst/internal/diagfmt"
	"pycst/internal/driver"
	"pycst/internal/lexer"
	"pycst/internal/project"
	"pycst/internal/ui"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.py",
	Short: "Tokenize a Python source file",
	Long:  `Tokenize breaks a Python source file into tokens, keeping every byte of whitespace`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json), overrides pycst.toml")
	tokenizeCmd.Flags().Bool("comments", false, "emit comment-only lines as tokens")
	tokenizeCmd.Flags().Bool("whitespace", false, "include whitespace runs in the dump")
	tokenizeCmd.Flags().BoolP("interactive", "i", false, "browse tokens interactively")
	tokenizeCmd.Flags().Bool("cached", false, "reuse the on-disk token cache when the file is unchanged")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// конфигурация проекта (если pycst.toml найден выше по дереву)
	cfg, _, err := project.LoadConfigFrom(".")
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = cfg.Output.Format
	}

	emitComments, _ := cmd.Flags().GetBool("comments")
	showWhitespace, _ := cmd.Flags().GetBool("whitespace")
	interactive, _ := cmd.Flags().GetBool("interactive")

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	lexOpts := lexer.Options{
		EmitCommentLines: emitComments || cfg.Tokenizer.EmitCommentLines,
		MaxTokenLen:      cfg.Tokenizer.MaxTokenLen,
	}

	cached, _ := cmd.Flags().GetBool("cached")

	var result *driver.TokenizeResult
	if cached {
		cache, cacheErr := driver.OpenTokenCache("pycst")
		if cacheErr != nil {
			return fmt.Errorf("failed to open token cache: %w", cacheErr)
		}
		result, _, err = driver.TokenizeCached(filePath, maxDiagnostics, lexOpts, cache)
	} else {
		result, err = driver.Tokenize(filePath, maxDiagnostics, lexOpts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// диагностика уходит в stderr
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}

	if interactive {
		model := ui.NewBrowserModel(filePath, result.Tokens, result.FileSet)
		program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithAltScreen())
		_, uiErr := program.Run()
		return uiErr
	}

	tokenOpts := diagfmt.TokenOpts{
		Color:          useColor(cmd, os.Stdout),
		ShowWhitespace: showWhitespace || cfg.Output.ShowWhitespace,
	}
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet, tokenOpts)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, tokenOpts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
