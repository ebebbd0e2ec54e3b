package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
	"mvdan.cc/sh/v3/interp"

	"github.com/sewbacca/clink/internal/config"
	"github.com/sewbacca/clink/internal/core"
	"github.com/sewbacca/clink/pkg/complete/completers"
	"github.com/sewbacca/clink/pkg/lineedit"
	"github.com/sewbacca/clink/pkg/luagen"
)

var BUILD_VERSION = "dev"

var configPath = flag.String("config", "", "path to the config file")
var versionFlag = flag.Bool("ver", false, "display build version")

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "clink: standard input is not a terminal")
		os.Exit(1)
	}

	logger, err := createLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "clink: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	editor, cleanup, err := buildEditor(logger)
	if err != nil {
		logger.Error("failed to build editor", zap.Error(err))
		fmt.Fprintf(os.Stderr, "clink: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if _, err := tea.NewProgram(newModel(editor)).Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "clink: %v\n", err)
		os.Exit(1)
	}
}

// createLogger builds a file-backed logger so log output never interleaves
// with the terminal UI.
func createLogger() (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	logConfig.OutputPaths = []string{core.LogFile()}
	logConfig.ErrorOutputPaths = []string{core.LogFile()}
	return logConfig.Build()
}

// buildEditor wires the completion chain: Lua scripts first, then word lists,
// command names, and finally the filesystem fallback.
func buildEditor(logger *zap.Logger) (*lineedit.Editor, func(), error) {
	path := *configPath
	if path == "" {
		path = core.ConfigFile()
	}
	cfg, err := config.Load(path, logger)
	if err != nil {
		logger.Warn("falling back to default config", zap.Error(err))
		cfg = config.Default()
	}

	host := luagen.NewHost(logger)
	for _, dir := range append([]string{core.ScriptsDir()}, cfg.ScriptDirs...) {
		if err := host.LoadDir(dir); err != nil {
			logger.Warn("failed to load script dir", zap.String("dir", dir), zap.Error(err))
		}
	}

	wordLists := completers.NewWordListGenerator()
	for command, words := range cfg.WordLists {
		wordLists.Register(command, words)
	}

	var runner *interp.Runner
	if r, err := interp.New(); err == nil {
		runner = r
	} else {
		logger.Warn("shell runner unavailable, using process environment", zap.Error(err))
	}

	editor := lineedit.NewEditor(logger, cfg.Separator())
	editor.RegisterGenerator(host)
	editor.RegisterGenerator(wordLists)
	editor.RegisterGenerator(completers.NewCommandGenerator(runner))
	editor.RegisterGenerator(completers.NewFileGenerator(nil))

	return editor, host.Close, nil
}
