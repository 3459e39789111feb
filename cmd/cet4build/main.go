package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wordlist"
	"github.com/fwojciec/wordlist/fastjson"
	"github.com/fwojciec/wordlist/fs"
	"github.com/fwojciec/wordlist/goquery"
	wlslog "github.com/fwojciec/wordlist/slog"
	"github.com/spf13/afero"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// File system holding the input and output files.
	FS afero.Fs

	// Directory relative paths resolve against. Defaults to the directory
	// of the running executable.
	BaseDir string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		FS: afero.NewOsFs(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cet4build"),
		kong.Description("Build the CET-4 word list from the scraped vocabulary dataset"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	baseDir := cli.BaseDir
	if baseDir == "" {
		baseDir = m.BaseDir
	}
	if baseDir == "" {
		if baseDir, err = executableDir(); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return err
		}
	}
	config := cli.Config(baseDir)

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Source: wlslog.NewLoggingRecordSource(
			fs.NewSource(m.FS, config.InputPath, fastjson.NewDecoder()),
			logger,
		),
		Assembler: &wordlist.Assembler{
			Phonetics: goquery.NewPhoneticFinder(),
			IDPrefix:  wordlist.DefaultIDPrefix,
		},
		Serializer: &wordlist.Serializer{
			JSONPath:   config.JSONPath,
			ModulePath: config.ModulePath,
			Binding:    config.Binding,
		},
		Store: wlslog.NewLoggingArtifactStore(fs.NewArtifactStore(m.FS), logger),
	}

	cmd := &BuildCmd{BaseDir: config.BaseDir}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
// Every flag is optional; without flags the tool reads and writes the fixed
// locations next to the executable.
type CLI struct {
	BaseDir   string `name:"base-dir" help:"Directory relative paths resolve against (default: executable directory)"`
	Input     string `name:"input" default:"data/cet4_raw.json" help:"Scraped dataset to read"`
	JSONOut   string `name:"json-out" default:"data/cet4_words.json" help:"Word list JSON output"`
	ModuleOut string `name:"module-out" default:"data/cet4_words.js" help:"Word list module output"`
	Binding   string `name:"binding" default:"cet4Words" help:"Name exported by the module output"`
	Verbose   bool   `short:"v" help:"Log diagnostics to stderr"`
}

// Config holds resolved file locations for one build.
type Config struct {
	BaseDir    string
	InputPath  string
	JSONPath   string
	ModulePath string
	Binding    string
}

// Config resolves the CLI paths against baseDir.
func (c *CLI) Config(baseDir string) Config {
	resolve := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(baseDir, path)
	}
	return Config{
		BaseDir:    baseDir,
		InputPath:  resolve(c.Input),
		JSONPath:   resolve(c.JSONOut),
		ModulePath: resolve(c.ModuleOut),
		Binding:    c.Binding,
	}
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
