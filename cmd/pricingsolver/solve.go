package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	pricing "github.com/appsaprinsky/rustv2executables-pricing"
	"github.com/appsaprinsky/rustv2executables-pricing/internal/config"
	"github.com/appsaprinsky/rustv2executables-pricing/internal/obslog"
)

type solveOptions struct {
	output string
}

func registerSolveFlags(fs *pflag.FlagSet, opts *solveOptions) {
	fs.StringVarP(&opts.output, "output", "o", "", "output JSON file, or '-' for stdout (default stdout)")
}

func newSolveCmd() *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve <input>",
		Short: "Solve a pricing subproblem from a JSON envelope",
		Long: `Solve reads an input envelope (a JSON file, or '-' for stdin), searches for
an improving route, and writes the result envelope. No improving route is a
normal outcome and is written as JSON null.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], opts)
		},
	}
	registerSolveFlags(cmd.Flags(), opts)
	return cmd
}

func runSolve(cmd *cobra.Command, inputPath string, opts *solveOptions) error {
	cfg := config.Load()
	logger := obslog.New(cmd.ErrOrStderr(), cfg.LogLevel)

	raw, err := readInput(cmd.InOrStdin(), inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var in pricing.Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	solver := &pricing.Solver{
		OracleBinary: cfg.OraclePath,
		ZoneOffset:   cfg.ZoneOffset,
		Logger:       logger,
	}

	res, err := solver.Solve(cmd.Context(), &in)
	if err != nil {
		return err
	}

	// A nil result marshals as JSON null, the empty-result envelope.
	out, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), opts.output, out)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(stdout io.Writer, path string, body []byte) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprintln(stdout, string(body))
		return err
	}
	return os.WriteFile(path, append(body, '\n'), 0o644)
}
