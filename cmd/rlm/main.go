package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"rlm/internal/config"
	"rlm/internal/logging"
	"rlm/internal/mcp"
	"rlm/internal/service"
	"rlm/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath  string
		query    string
		plain    bool
		serveMCP bool
		maxChars int
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/rlm/config.yaml if not provided)")
	flag.StringVar(&query, "q", "", "Answer a single question and exit")
	flag.BoolVar(&plain, "plain", false, "Use a line-based prompt instead of the full-screen UI")
	flag.BoolVar(&serveMCP, "mcp", false, "Serve the answer tool over MCP on stdio")
	flag.IntVar(&maxChars, "max-chars", 0, "Override the maximum chunk size in characters")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: rlm [flags] [context files...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetOutput(os.Stderr)

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.ApplyEnv()
	if maxChars > 0 {
		cfg.Chunker.MaxChars = maxChars
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = cfg.Context.Files
	}

	logger := logging.New(cfg.Log.Level)
	svc := service.New(cfg, inputs, logger)
	stats := svc.Stats()
	if stats.Chunks == 0 {
		logger.Info("no context loaded; every answer will report no relevant information")
	}

	switch {
	case query != "":
		fmt.Println(svc.Answer(query))
	case serveMCP:
		runMCP(svc, logger)
	case plain:
		if err := tui.RunPlain(os.Stdin, os.Stdout, svc); err != nil {
			log.Fatalf("read loop failed: %v", err)
		}
	default:
		banner := fmt.Sprintf("%d files, %d chunks", stats.FilesLoaded, stats.Chunks)
		if _, err := tea.NewProgram(tui.New(svc, banner).WithOverview(stats.Overview), tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
	}
}

func runMCP(svc *service.RLMService, logger *logging.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("MCP server ready, listening on stdio...")
		errChan <- mcp.NewServer(svc).Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		logger.Info("received signal %v, shutting down", sig)
	case err := <-errChan:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	}
}
