// cmd/keel/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // standard log for errors before the logger is ready
	"os"

	"github.com/keeledit/keel/internal/config"
	"github.com/keeledit/keel/internal/core"
	"github.com/keeledit/keel/internal/core/clipboard"
	"github.com/keeledit/keel/internal/logger"
	"github.com/keeledit/keel/internal/types"
)

var (
	doCopy  = flag.Bool("copy", false, "Copy the file's contents to the clipboard")
	doPaste = flag.Bool("paste", false, "Paste the clipboard at the start of the file and save")
)

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Logger output: configured file, or stderr for "" / "-".
	logOutput := os.Stderr
	if path := cfg.Logger.LogFilePath; path != "" && path != "-" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file %q: %v", path, err)
		}
		defer f.Close()
		logOutput = f
	}
	logger.Init(cfg.Logger.Level(), logOutput)

	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file>\n", config.AppName)
		os.Exit(2)
	}
	path := args[0]

	ed, err := core.FromFile(path)
	if err != nil {
		logger.Fatalf("Failed to load %s: %v", path, err)
	}
	if binding := ed.File(); binding != nil && binding.Stat == nil {
		logger.Infof("%s does not exist yet; starting a new file", path)
	}

	if *doCopy || *doPaste {
		bridge, err := clipboard.FromConfig(cfg.Clipboard)
		if err != nil {
			logger.Fatalf("No clipboard backend: %v", err)
		}

		if *doCopy {
			// Select the whole document, then stream it out.
			all := ed.Current().WithCursors([]types.Span{{Start: 0, End: ed.Current().Content().Len()}})
			ed = ed.AddUndo(all)
			if err := ed.CopyClipboard(bridge); err != nil {
				logger.Fatalf("Copy failed: %v", err)
			}
			ed = ed.MarkCopied()
			logger.Infof("Copied %d bytes from %s", ed.Current().Content().Len(), path)
		}

		if *doPaste {
			ed, err = ed.PasteClipboard(bridge)
			if err != nil {
				logger.Fatalf("Paste failed: %v", err)
			}
			ed, err = ed.Save()
			if err != nil {
				logger.Fatalf("Save failed: %v", err)
			}
			logger.Infof("Pasted clipboard into %s", path)
		}
	}

	status := "clean"
	if ed.Dirty() {
		status = "dirty"
	}
	fmt.Printf("%s: %d bytes, %d history entries, %s\n",
		path, ed.Current().Content().Len(), ed.HistoryLen(), status)
}
