package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pycst/internal/diagfmt"
	"pycst/internal/driver"
	"pycst/internal/lexer"
	"pycst/internal/observ"
	"pycst/internal/prof"
	"pycst/internal/source"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] path...",
	Short: "Check byte-for-byte reconstruction",
	Long: `Verify tokenizes the given files (or every *.py file under a directory)
and checks that concatenating the tokens reproduces each file exactly`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	verifyCmd.Flags().Bool("timings", false, "print per-phase timings")
	verifyCmd.Flags().String("cpuprofile", "", "write a CPU profile to the given file")
	verifyCmd.Flags().String("memprofile", "", "write a heap profile to the given file")
}

func runVerify(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	timings, _ := cmd.Flags().GetBool("timings")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	if cpuProfile, _ := cmd.Flags().GetString("cpuprofile"); cpuProfile != "" {
		if err := prof.StartCPU(cpuProfile); err != nil {
			return fmt.Errorf("failed to start CPU profile: %w", err)
		}
		defer prof.StopCPU()
	}

	timer := observ.NewTimer()
	failed := 0
	files := 0
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return err
		}

		var (
			fileSet *source.FileSet
			results []driver.TokenizeDirResult
		)
		phase := timer.Begin("tokenize")
		if info.IsDir() {
			fileSet, results, err = driver.TokenizeDir(cmd.Context(), arg, maxDiagnostics, jobs, lexer.Options{})
		} else {
			fileSet, results, err = driver.TokenizeAll(cmd.Context(), []string{arg}, maxDiagnostics, jobs, lexer.Options{})
		}
		timer.End(phase, fmt.Sprintf("%d file(s) in %s", len(results), arg))
		if err != nil {
			return err
		}

		phase = timer.Begin("verify")
		failed += verifyResults(cmd, fileSet, results, quiet)
		timer.End(phase, "")
		files += len(results)
	}

	if memProfile, _ := cmd.Flags().GetString("memprofile"); memProfile != "" {
		if err := prof.WriteMem(memProfile); err != nil {
			return fmt.Errorf("failed to write heap profile: %w", err)
		}
	}
	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if failed > 0 {
		return fmt.Errorf("verify: %d of %d file(s) failed", failed, files)
	}
	return nil
}

func verifyResults(cmd *cobra.Command, fileSet *source.FileSet, results []driver.TokenizeDirResult, quiet bool) int {
	failed := 0
	for _, res := range results {
		if res.Bag.HasErrors() {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: lexical errors\n", res.Path)
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
				Color:   useColor(cmd, os.Stderr),
				Context: 1,
			})
			continue
		}

		file := fileSet.Get(res.FileID)
		rt := driver.VerifyRoundtrip(string(file.Content), res.Tokens)
		if !rt.OK {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: reconstruction diverges at byte %d (want %q, got %q)\n",
				res.Path, rt.DivergeAt, rt.Want, rt.Got)
			continue
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%d tokens)\n", res.Path, len(res.Tokens))
		}
	}
	return failed
}
