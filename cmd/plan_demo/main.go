package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"voyage/internal/ai"
	"voyage/internal/config"
	"voyage/internal/modules/planner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	request := "I want a 3-day luxury beach vacation in the Caribbean from 12-20-2024 to 12-22-2024, feeling adventurous, budget $3000, I love seafood and water sports"
	if len(os.Args) > 1 {
		request = strings.Join(os.Args[1:], " ")
	}

	ctx := context.Background()

	var provider ai.Provider
	switch cfg.Generation.Provider {
	case "together":
		provider, err = ai.NewTogetherProvider(cfg.Generation.TogetherKey)
	default:
		var p *ai.GeminiProvider
		p, err = ai.NewGeminiProvider(ctx, cfg.Generation.GeminiKey)
		if err == nil {
			defer p.Close()
		}
		provider = p
	}
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}

	provider = ai.Retry(provider, cfg.Generation.MaxAttempts,
		time.Duration(cfg.Generation.RetryDelaySeconds)*time.Second)

	fmt.Printf("Request: %s\n\n", request)

	result := planner.NewService(provider).Plan(ctx, request)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Error encoding result: %v", err)
	}
	fmt.Println(string(out))
}
