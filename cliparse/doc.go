// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values are layered, highest first:

 1. CLI flags
 2. Environment variables (a .env file is loaded by main beforehand)
 3. YAML config file (-c or CONFIG_FILE)
 4. Defaults

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: SQLite file path or PostgreSQL URL (default: data.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - LogLevel: debug, info, warn or error (default: info)
  - BasicAuthUser, BasicAuthPass: optional HTTP basic auth
  - LLM.Provider: openai, claude, ollama or an OpenAI-compatible provider (default: openai)
  - LLM.Model: model name (default: the provider's own, e.g. gpt-4 for openai)
  - LLM.APIKey: provider API key
  - LLM.BaseURL: optional endpoint override
  - LLM.Timeout: timeout per model call (default: 60s)

# CLI Flags

	-c             YAML config file
	-p             Server port
	-d             Database URL
	-t             Database type
	-log-level     Log level
	-llm-provider  LLM provider
	-llm-model     LLM model
	-llm-base-url  LLM base URL
	-llm-timeout   LLM call timeout
	-llm-api-key   LLM API key
	-auth-user     Basic auth username
	-auth-password Basic auth password

# Environment Variables

	PORT, DATABASE_URL, DATABASE_TYPE, LOG_LEVEL, CONFIG_FILE
	BASIC_AUTH_USER, BASIC_AUTH_PASSWORD
	LLM_PROVIDER, LLM_MODEL, LLM_BASE_URL, LLM_TIMEOUT
	LLM_API_KEY, or OPENAI_API_KEY / ANTHROPIC_API_KEY matching the provider

# YAML File

	port: 8000
	database_url: data.db
	database_type: sqlite
	llm:
	  provider: openai
	  model: gpt-4
	  timeout: 60s

# Validation

ParseFlags returns an error for an unknown database type or LLM provider,
an out-of-range port, a non-positive timeout, or only one of the two basic
auth credentials. A missing API key is not an error: the form pages work
without one, and ollama needs none.
*/
package cliparse
