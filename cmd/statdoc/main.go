// Command statdoc generates reference documentation for the library by
// extracting exported function signatures and doc comments from source.
// By default it prints Markdown to stdout; -html prints a standalone page
// and -serve starts the docs viewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"statlib/internal"
	"statlib/internal/config"
	"statlib/internal/docgen"
	"statlib/ui"
)

// defaultDirs are the packages documented when none are named on the
// command line, relative to the configured source root.
var defaultDirs = []string{
	"domain/numeric",
	"domain/dist",
	"domain/sample",
}

func main() {
	asHTML := flag.Bool("html", false, "render a standalone HTML page instead of Markdown")
	serve := flag.Bool("serve", false, "serve the rendered reference over HTTP")
	flag.Parse()

	// A local .env is optional.
	_ = godotenv.Load()

	logger := internal.DefaultLogger

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration: %v", err)
		os.Exit(1)
	}

	dirs := flag.Args()
	if len(dirs) == 0 {
		dirs = make([]string, len(defaultDirs))
		for i, d := range defaultDirs {
			dirs[i] = filepath.Join(cfg.Docs.SourceDir, d)
		}
	}

	if *serve {
		app, err := ui.NewApp(cfg, dirs)
		if err != nil {
			logger.Error("starting docs viewer: %v", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := app.Start(ctx); err != nil {
			logger.Error("docs viewer: %v", err)
			os.Exit(1)
		}
		return
	}

	pkgs, err := docgen.ExtractDirs(dirs)
	if err != nil {
		logger.Error("extracting docs: %v", err)
		os.Exit(1)
	}

	md := docgen.Markdown(cfg.Docs.Title, pkgs)
	if *asHTML {
		os.Stdout.Write(docgen.RenderHTML(cfg.Docs.Title, md))
		return
	}
	fmt.Print(md)
}
