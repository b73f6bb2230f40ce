// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/quickly-plan/llm"
)

// Intent names
const (
	QuerySchedule = "query_schedule"
	AddSchedule   = "add_schedule"
	None          = "None"
)

// aliases maps other spellings a model may answer with
var aliases = map[string]string{
	"일정조회":           QuerySchedule,
	"일정등록":           AddSchedule,
	"query schedule": QuerySchedule,
	"add schedule":   AddSchedule,
}

// Result is the classified command. Only the fields of the matching intent
// are filled; Raw always holds the model's reply.
type Result struct {
	Intent      string `json:"intent"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Raw         string `json:"raw,omitempty"`
}

// Recognized reports whether the intent is one the application can execute
func (r Result) Recognized() bool {
	return r.Intent == QuerySchedule || r.Intent == AddSchedule
}

type Parser struct {
	model llm.LLM
}

func NewParser(model llm.LLM) *Parser {
	return &Parser{model: model}
}

// Parse sends text to the model and decodes the reply. A reply that is not a
// JSON object yields a Result with Intent None and a nil error; transport
// errors are returned as-is.
func (p *Parser) Parse(ctx context.Context, text string) (Result, error) {
	reply, err := p.model.Chat(ctx, SystemPrompt, []llm.Message{
		{Role: "user", Content: text},
	})
	if err != nil {
		return Result{}, fmt.Errorf("classify command: %w", err)
	}

	result := ParseReply(reply)
	slog.Debug("intent parsed", "intent", result.Intent, "raw", reply)

	return result, nil
}

// ParseReply decodes a model reply into a Result
func ParseReply(reply string) Result {
	var fields map[string]any
	if err := json.Unmarshal([]byte(stripFences(reply)), &fields); err != nil {
		return Result{Intent: None, Raw: reply}
	}

	result := Result{
		Intent: normalize(strings.TrimSpace(stringField(fields, "intent"))),
		Raw:    reply,
	}

	switch result.Intent {
	case QuerySchedule:
		result.StartDate = stringField(fields, "start_date")
		result.EndDate = stringField(fields, "end_date")
	case AddSchedule:
		result.Date = stringField(fields, "date")
		result.Description = stringField(fields, "description")
	}

	return result
}

// stringField returns fields[key] unchanged when it is a string, and ""
// otherwise
func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func normalize(name string) string {
	if canonical, ok := aliases[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

// stripFences removes a surrounding ```json ... ``` block
func stripFences(reply string) string {
	s := strings.TrimSpace(reply)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
