package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	apiassistant "robocup_platform/pkg/api/assistant"
	"robocup_platform/pkg/api/calculator"
	"robocup_platform/pkg/api/dashboard"
	"robocup_platform/pkg/api/pages"
	apishell "robocup_platform/pkg/api/shell"
	apivoice "robocup_platform/pkg/api/voice"
	"robocup_platform/pkg/core/agent"
	"robocup_platform/pkg/core/assistant"
	"robocup_platform/pkg/core/projection"
	"robocup_platform/pkg/core/prompt"
	coreshell "robocup_platform/pkg/core/shell"
	"robocup_platform/pkg/core/store"
)

// appConfig is the shape of config/app.yaml.
type appConfig struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Agent agent.Config `yaml:"agent"`
	Voice struct {
		Model     string `yaml:"model"`
		VoiceName string `yaml:"voice_name"`
	} `yaml:"voice"`
}

func initLogger(level, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = lvl
	}
	return cfg.Build()
}

func main() {
	// Load environment variables (GEMINI_API_KEY, DATABASE_URL)
	godotenv.Load()

	cfg := appConfig{}
	configData, err := os.ReadFile("config/app.yaml")
	if err == nil {
		if err := yaml.Unmarshal(configData, &cfg); err != nil {
			fmt.Printf("[FATAL] Invalid config/app.yaml: %v\n", err)
			os.Exit(1)
		}
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}

	log, err := initLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Prompt library (falls back to the built-in prompts when missing)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		log.Warn("prompt library not loaded, using built-in prompts", zap.Error(err))
	} else {
		log.Info("prompt library loaded", zap.Int("prompts", prompt.Get().Count()))
	}

	// Database is optional; without it the dashboard serves demo fixtures.
	if err := store.InitDB(context.Background()); err != nil {
		log.Warn("running without database", zap.Error(err))
	} else {
		defer store.Close()
	}

	agentMgr := agent.NewManager(cfg.Agent)
	assistantClient := assistant.NewClient(agentMgr)
	fleetRepo := store.NewFleetRepo()
	switcher := coreshell.NewSwitcher()

	// Calculator endpoints
	calcHandler := calculator.NewHandler(projection.NewEngine(projection.DefaultPricing()))
	http.HandleFunc("/api/calculator/project", calcHandler.HandleProject)

	// AI Assistant endpoints
	assistantHandler := apiassistant.NewHandler(assistantClient, fleetRepo)
	http.HandleFunc("/api/assistant/ask", assistantHandler.HandleAsk)
	http.HandleFunc("/api/assistant/forecast", assistantHandler.HandleForecast)

	// Live voice bridge
	voiceHandler := apivoice.NewHandler(cfg.Voice.Model, cfg.Voice.VoiceName, log)
	http.HandleFunc("/api/voice/stream", voiceHandler.HandleStream)

	// Shell endpoints (role + navigation)
	shellHandler := apishell.NewHandler(switcher)
	http.HandleFunc("/api/shell/role", shellHandler.HandleRole)
	http.HandleFunc("/api/shell/nav", shellHandler.HandleNav)

	// Dashboard + marketing pages
	dashHandler := dashboard.NewHandler(fleetRepo, log)
	http.HandleFunc("/api/dashboard/fleet", dashHandler.HandleFleet)
	http.HandleFunc("/api/dashboard/sales", dashHandler.HandleSales)

	pagesHandler, err := pages.NewHandler()
	if err != nil {
		log.Fatal("failed to render landing content", zap.Error(err))
	}
	http.HandleFunc("/api/pages/home", pagesHandler.HandlePage)

	log.Info("API server starting", zap.String("addr", cfg.Server.Addr))
	if err := http.ListenAndServe(cfg.Server.Addr, nil); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
