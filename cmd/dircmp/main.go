package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/boostgo/dircmp"
	"github.com/boostgo/dircmp/internal/cli"
	"github.com/boostgo/dircmp/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

// run executes one comparison and returns the process exit code:
// 0 when the report was printed, 1 when the run failed, 2 on usage errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := cli.Parse(args)
	if err != nil {
		if cli.IsHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "%s: %v\n", cli.Name, err)
		return 2
	}

	level := logger.LevelByName(opts.LogLevel)
	if opts.Debug {
		level = slog.LevelDebug
	}
	log := logger.New(stderr, level)

	log.Debug("comparing directories",
		"left", opts.Left,
		"right", opts.Right,
		"out", opts.Out,
		"jobs", opts.Jobs,
		"timeout", opts.Timeout)

	roots := map[dircmp.Side]string{dircmp.SideLeft: opts.Left, dircmp.SideRight: opts.Right}
	for _, side := range []dircmp.Side{dircmp.SideLeft, dircmp.SideRight} {
		if !dircmp.DirectoryExist(roots[side]) {
			log.Error("comparison aborted",
				"side", string(side),
				"path", roots[side],
				"error", dircmp.ErrDirectoryUnavailable)
			return 1
		}
	}

	report, err := dircmp.Compare(ctx, opts.Left, opts.Right, compareOptions(opts, log)...)
	if err != nil {
		log.Error("comparison aborted", "error", err)
		return 1
	}

	if err := report.Write(stdout); err != nil {
		log.Error("failed to write report", "error", err)
		return 1
	}

	for _, failure := range report.Failures() {
		log.Warn("entry comparison incomplete",
			"entry", failure.Name,
			"classification", string(failure.Classification),
			"error", failure.Err)
	}

	return 0
}

func compareOptions(opts *cli.Option, log *slog.Logger) []dircmp.Option {
	var differ dircmp.Differ = dircmp.LineDiffer{Context: opts.Context}
	if fields := strings.Fields(opts.Tool); len(fields) > 0 {
		differ = dircmp.ToolDiffer{Program: fields[0], Args: fields[1:]}
	}

	var listOptions []dircmp.ListOption
	if opts.IgnoreHidden {
		listOptions = append(listOptions, dircmp.WithIgnoreHidden())
	}
	if len(opts.Include) > 0 {
		listOptions = append(listOptions, dircmp.WithIncludePatterns(opts.Include...))
	}
	if len(opts.Exclude) > 0 {
		listOptions = append(listOptions, dircmp.WithExcludePatterns(opts.Exclude...))
	}

	return []dircmp.Option{
		dircmp.WithArtifactDir(opts.Out),
		dircmp.WithTimeout(opts.Timeout),
		dircmp.WithConcurrency(opts.Jobs),
		dircmp.WithArtifactLock(!opts.NoLock),
		dircmp.WithDiffer(differ),
		dircmp.WithLogger(log),
		dircmp.WithListOptions(listOptions...),
	}
}
