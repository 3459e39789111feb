package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/wordlist"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Source     wordlist.RecordSource
	Assembler  *wordlist.Assembler
	Serializer *wordlist.Serializer
	Store      wordlist.ArtifactStore
}

// BuildCmd converts the input dataset into both output artifacts.
type BuildCmd struct {
	// BaseDir is used to shorten reported paths.
	BaseDir string
}

// Run executes the build. Nothing is written unless every step succeeds.
func (c *BuildCmd) Run(deps *Dependencies) error {
	records, err := deps.Source.LoadRecords(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	entries, stats := deps.Assembler.Assemble(records)

	artifacts, err := deps.Serializer.Artifacts(entries)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error rendering output: %s\n", errorMessage(err))
		return err
	}

	for _, artifact := range artifacts {
		if err := deps.Store.Save(deps.Ctx, artifact); err != nil {
			_ = deps.Store.Abort()
			fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", c.displayPath(artifact.Path), err)
			return err
		}
	}
	if err := deps.Store.Commit(); err != nil {
		_ = deps.Store.Abort()
		fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
		return err
	}

	if deps.Logger != nil {
		deps.Logger.Info("build complete",
			"processed", stats.Processed,
			"kept", stats.Kept,
			"skipped_no_word", stats.SkippedNoWord,
			"skipped_no_definition", stats.SkippedNoDefinition,
		)
	}

	fmt.Fprintf(deps.Stdout, "Processed %d records, kept %d words\n", stats.Processed, stats.Kept)
	for _, artifact := range artifacts {
		fmt.Fprintf(deps.Stdout, "Generated %s\n", c.displayPath(artifact.Path))
	}

	return nil
}

// displayPath reports path relative to the base directory when possible.
func (c *BuildCmd) displayPath(path string) string {
	if c.BaseDir == "" {
		return path
	}
	rel, err := filepath.Rel(c.BaseDir, path)
	if err != nil {
		return path
	}
	return rel
}

// errorMessage prefers the application message and falls back to the raw
// error text for unexpected failures.
func errorMessage(err error) string {
	if wordlist.ErrorCode(err) == wordlist.EINTERNAL {
		return err.Error()
	}
	return wordlist.ErrorMessage(err)
}
