// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Plan web server.

Quickly Plan is a small personal planner: schedules, checklists, and an AI
command box that turns sentences like "add a dentist appointment on
2025-04-05" into database operations via a language model.

# Starting the Server

With no configuration the server stores data in ./data.db (SQLite) and talks
to the OpenAI API:

	OPENAI_API_KEY=sk-... go run .

Or with flags:

	go run . -p 8000 -d data.db -llm-provider claude -llm-model claude-3-5-haiku-latest

A .env file in the working directory is loaded before flags are parsed.

# Configuration

Precedence is flags, then environment, then the YAML file given by -c or
CONFIG_FILE, then defaults.

  - PORT (-p): Server port (default: 8000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: data.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)
  - LLM_PROVIDER (-llm-provider): openai, claude, ollama, groq, ...
  - LLM_MODEL (-llm-model): Model name (default: chosen per provider)
  - LLM_API_KEY (-llm-api-key): Falls back to OPENAI_API_KEY or ANTHROPIC_API_KEY
  - LLM_BASE_URL (-llm-base-url): Override the provider endpoint
  - LLM_TIMEOUT (-llm-timeout): Per-call timeout (default: 60s)
  - BASIC_AUTH_USER / BASIC_AUTH_PASSWORD: Enable HTTP basic auth

# Architecture

  - handlers: HTTP request handlers (pages, schedules, checklists, AI)
  - router: Route definitions using Go 1.22+ routing
  - intent: Command classification on top of llm
  - llm: Chat clients for OpenAI-compatible APIs and Claude
  - views: Embedded HTML templates
  - calendar: iCalendar export
  - middleware: Logging, basic auth, response and form helpers
  - models: Domain and page types
  - auth: Credential checks
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
