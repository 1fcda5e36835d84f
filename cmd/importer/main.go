// Command importer runs the batch import pipeline over a word file and
// prints one JSON result per non-blank line to stdout.
//
// Flags:
//
//	--config   YAML config path (default: $CONFIG_PATH, then ./config.yaml)
//	--file     path to the word list; "-" reads stdin (default: -)
//	--mode     plain (one word per line) or ranked (word;rank;shortcut)
//	--timeout  overall deadline of the run
//
// Exit codes: 0 = every line imported, 1 = fatal error, 2 = some lines failed.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/learnenglish-backend/internal/app"
	"github.com/heartmarshall/learnenglish-backend/internal/config"
	"github.com/heartmarshall/learnenglish-backend/internal/service/importer"
)

func main() {
	configFlag := flag.String("config", os.Getenv("CONFIG_PATH"), "YAML config path")
	fileFlag := flag.String("file", "-", `word list path, "-" for stdin`)
	modeFlag := flag.String("mode", "plain", "import mode: plain or ranked")
	timeoutFlag := flag.Duration("timeout", time.Hour, "overall deadline")
	flag.Parse()

	cfg, err := config.LoadFile(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	mode, err := importer.ParseMode(*modeFlag)
	if err != nil {
		logger.Error("parse mode", slog.String("error", err.Error()))
		os.Exit(1)
	}

	raw, err := readInput(*fileFlag)
	if err != nil {
		logger.Error("read input", slog.String("file", *fileFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeoutFlag)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	results, err := c.Importer.Import(ctx, string(raw), mode)
	if err != nil {
		logger.Error("import", slog.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		logger.Error("write results", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, r := range results {
		if !r.OK() {
			c.Close()
			os.Exit(2)
		}
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
