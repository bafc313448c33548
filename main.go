package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/foundrly/foundrly/assistant"
	"github.com/foundrly/foundrly/backend"
	"github.com/foundrly/foundrly/config"
	"github.com/foundrly/foundrly/content"
	"github.com/foundrly/foundrly/server"
	"github.com/foundrly/foundrly/webhook"
)

func main() {
	configPath := flag.String("config", "config/config.json", "path to config.json")
	serve := flag.Bool("serve", false, "start the wizard API server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	surface := flag.String("surface", "blog", "content surface for one-shot generation (blog|newsletter|ad)")
	typeID := flag.String("type", "", "content type id (defaults to the surface's first catalog entry)")
	name := flag.String("name", "", "brand name")
	website := flag.String("website", "", "brand website URL")
	keywords := flag.String("keywords", "", "comma-separated brand keywords")
	verbose := flag.Bool("v", false, "enable debug logs")
	flag.Parse()

	logger := buildLogger(*verbose)
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *serve {
		runServer(cfg, *addr, logger)
		return
	}

	// One-shot mode: generate content for a brand and print it.
	if *name == "" || *website == "" {
		fmt.Fprintln(os.Stderr, "--name and --website are required (or pass --serve)")
		os.Exit(1)
	}
	brand := content.BrandInput{Name: *name, Website: *website, Keywords: *keywords}
	generated := content.Generate(content.Surface(*surface), *typeID, brand)
	out, err := json.MarshalIndent(generated, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func runServer(cfg config.Config, addrOverride string, logger *zap.Logger) {
	hook := webhook.New(cfg.WebhookURL, cfg.AnalyticsURL, nil, logger)

	deps := server.Deps{
		Logger:    logger,
		Publisher: hook,
		Pinger:    hook,
	}
	if cfg.Backend != nil && cfg.Backend.BaseURL != "" {
		be, err := backend.New(cfg.Backend.BaseURL, cfg.Backend.APIKey, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		deps.Backend = be
		deps.Saver = be
	}
	if llm, err := buildAssistant(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else if llm != nil {
		deps.Assistant = llm
	}

	listen := cfg.ServerAddr
	if addrOverride != "" {
		listen = addrOverride
	}
	if listen == "" {
		listen = ":8080"
	}
	logger.Info("starting wizard API server", zap.String("addr", listen))
	if err := http.ListenAndServe(listen, server.New(deps).Routes()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildAssistant returns nil when no LLM is configured; the server then
// runs with the hardcoded welcome fallback.
func buildAssistant(cfg config.Config) (assistant.Client, error) {
	if cfg.LLM == nil || cfg.LLM.Provider == "" {
		return nil, nil
	}
	switch cfg.LLM.Provider {
	case "openai":
		return assistant.NewOpenAI(assistant.Settings{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Temperature: 0.7,
			MaxTokens:   400,
		})
	case "mock":
		return assistant.Mock{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}

func buildLogger(verbose bool) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return logger
}
