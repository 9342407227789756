package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"wordaxis/internal/config"
	"wordaxis/internal/engine"
	"wordaxis/internal/loader"
	"wordaxis/internal/service"
	"wordaxis/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, embPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/wordaxis/config.yaml if not provided)")
	flag.StringVar(&embPath, "embeddings", "", "Path to a word2vec/GloVe text embedding file (overrides config)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, cfgPath, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if embPath != "" {
		cfg.Embeddings.Path = embPath
	}

	emb, err := loader.Load(cfg.Embeddings.Path, loader.Options{
		Normalize: cfg.Embeddings.Normalize,
		Limit:     cfg.Embeddings.Limit,
	})
	if err != nil {
		log.Fatalf("failed to load embeddings: %v", err)
	}
	rows, dim := emb.Matrix.Dims()
	log.Printf("loaded %d words x %d dims from %s (config %s)", rows, dim, cfg.Embeddings.Path, cfgPath)

	eng := engine.New(emb.Matrix, emb.Words, engine.Options{
		Epsilon:          cfg.Engine.Epsilon,
		Workers:          cfg.Engine.Workers,
		BatchBypassCache: cfg.Engine.BatchBypassCache,
	})

	explorer, err := service.NewExplorer(eng, cfg.Explorer.Axes, cfg.Explorer.Neighbors)
	if err != nil {
		log.Fatalf("explorer init failed: %v", err)
	}

	if _, err := tea.NewProgram(tui.New(explorer), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
