// satchat - SMS and JSON relay to a generative-text service
// Copyright (C) 2026  nexus contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// satchat relays SMS (Twilio webhook) and JSON messages to a generative-text
// backend and returns the generated reply.
//
// Configuration is read from the environment, optionally seeded from a .env
// file in the working directory:
//
//	PORT                listen port (default 5000)
//	LLM_PROVIDER        gemini (default) or openai
//	LLM_MODEL           model name (default gemini-2.0-flash, gpt-4o-mini for openai)
//	GEMINI_API_KEY      required for gemini
//	OPENAI_API_KEY      required for openai
//	OPENAI_BASE_URL     optional OpenAI-compatible API root
//	HTTP_WRITE_TIMEOUT  server write timeout (default 2m)
//	SAMPLE_PROMPT       default prompt for /test_generate
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jredh-dev/satchat/config"
	"github.com/jredh-dev/satchat/internal/handlers"
	"github.com/jredh-dev/satchat/internal/llm"
	"github.com/jredh-dev/satchat/internal/relay"
	"github.com/jredh-dev/satchat/internal/server"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("satchat %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", buildDate)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gen, err := llm.New(ctx, llm.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.ModelName(),
		APIKey:   cfg.LLM.APIKey(),
		BaseURL:  cfg.LLM.BaseURL(),
	})
	if err != nil {
		log.Fatalf("Failed to create %s client: %v", cfg.LLM.Provider, err)
	}

	h := handlers.New(relay.New(gen), cfg.SamplePrompt)

	srv := server.New()
	srv.WriteTimeout = cfg.WriteTimeout
	h.Routes(srv.Router)

	addr := ":" + cfg.Port
	log.Printf("satchat %s using %s (%s)", version, gen.Name(), cfg.LLM.ModelName())
	log.Printf("  SMS webhook: http://localhost%s/sms", addr)
	log.Printf("  JSON reply:  http://localhost%s/reply", addr)
	log.Printf("  Diagnostic:  http://localhost%s/test_generate?q=...", addr)

	if err := srv.ListenAndServe(ctx, addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
