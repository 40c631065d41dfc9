// Bulk-loads a translation dataset CSV into the similarity memory.
// Usage: load_dataset -file dataset.csv -max 10000
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/ulimi/internal/config"
	"github.com/agenthands/ulimi/internal/core/memory"
	"github.com/agenthands/ulimi/internal/driver"
	"github.com/agenthands/ulimi/internal/llm"
)

func main() {
	file := flag.String("file", "dataset.csv", "path to the dataset CSV")
	maxRows := flag.Int("max", 10000, "maximum rows to load")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}

	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		cfg.Memgraph.URI = v
	}
	if cfg.Memgraph.URI == "" {
		cfg.Memgraph.URI = "bolt://localhost:7687"
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}

	ctx := context.Background()

	d, err := driver.NewMemgraphDriver(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, 0)
	if err != nil {
		log.Fatalf("Failed to connect to Memgraph: %v", err)
	}
	defer d.Close(ctx)

	if err := d.BuildIndices(ctx); err != nil {
		log.Printf("Warning: failed to build indices: %v", err)
	}

	_, embedder, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	if embedder == nil {
		log.Fatalf("Provider %s has no embedding support; pick openai, gemini or ollama", cfg.LLM.Provider)
	}

	mem := memory.New(d, embedder)

	loaded, err := mem.LoadDatasetCSV(ctx, *file, *maxRows)
	if err != nil {
		log.Fatalf("Dataset load failed after %d rows: %v", loaded, err)
	}

	log.Printf("Loaded %d sentences from %s", loaded, *file)
}
