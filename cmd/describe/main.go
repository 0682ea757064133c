package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hellodesc/hellodesc/internal/config"
	"github.com/hellodesc/hellodesc/internal/description"
	"github.com/hellodesc/hellodesc/internal/description/generator"
	"github.com/hellodesc/hellodesc/internal/description/service"
	"github.com/hellodesc/hellodesc/pkg/logger"
)

// describe runs the same generate-and-store flow as POST /hello for a name
// given on the command line and prints the description.
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if len(os.Args) < 2 || strings.TrimSpace(strings.Join(os.Args[1:], " ")) == "" {
		fmt.Fprintln(os.Stderr, "usage: describe <name>")
		os.Exit(2)
	}
	name := strings.Join(os.Args[1:], " ")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	store, closeStore, err := service.FromConfig(ctx, cfg)
	if err != nil {
		logger.Warnf("cannot open %s store (%v), using memory-backed store", cfg.Store.Backend, err)
		store, closeStore = service.NewMemoryService(), func() {}
	}
	defer closeStore()

	var gen *generator.Generator
	if client, err := generator.NewAzureClient(cfg.AzureOpenAI); err != nil {
		logger.Warnf("completion client not configured: %v", err)
		gen = generator.New(nil, cfg.AzureOpenAI.Deployment)
	} else {
		gen = generator.New(client, cfg.AzureOpenAI.Deployment)
	}

	text, err := gen.Describe(ctx, name)
	if err != nil {
		logger.Errorf("An error occurred while requesting the completion service (kind=%s): %v", description.KindOf(err), err)
		text = description.FallbackText
	}
	if id, err := store.Store(ctx, description.Record{Name: name, Description: text}); err != nil {
		logger.Errorf("An error occurred while inserting document: %v", err)
	} else {
		logger.Infof("Document inserted with id: %s", id)
	}

	fmt.Println(text)
}
