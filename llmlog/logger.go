// Package llmlog writes one structured JSON record per LLM call attempt
// to a dedicated log file, separate from the HTTP access log.
package llmlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Record carries everything logged about a single call attempt.
type Record struct {
	RequestId     string
	PromptId      string
	PromptVersion string
	Provider      string
	ModelUsed     string
	InputTokens   *int
	OutputTokens  *int
	Latency       float64
	InputText     string
	OutputText    string
	ErrorMessage  string
}

type Logger struct {
	log    *slog.Logger
	closer io.Closer
}

// NewLogger opens (or creates) the log file and returns a JSON-lines
// logger appending to it.
func NewLogger(file string) (*Logger, error) {
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("llmlog: open %s: %w", file, err)
	}
	return &Logger{
		log:    slog.New(slog.NewJSONHandler(f, nil)),
		closer: f,
	}, nil
}

// NewLoggerWithWriter is used by tests to capture records.
func NewLoggerWithWriter(w io.Writer) *Logger {
	return &Logger{log: slog.New(slog.NewJSONHandler(w, nil))}
}

// Success emits the informational record for a completed call.
func (l *Logger) Success(r Record) {
	l.log.Info("LLM call successful",
		"request_id", r.RequestId,
		"prompt_id", r.PromptId,
		"prompt_version", r.PromptVersion,
		"provider", r.Provider,
		"model_used", r.ModelUsed,
		"input_tokens", tokens(r.InputTokens),
		"output_tokens", tokens(r.OutputTokens),
		"latency", r.Latency,
		"outcome", "success",
		"input_text", r.InputText,
		"output_text", r.OutputText,
	)
}

// Failure emits the error record for a failed call.
func (l *Logger) Failure(r Record) {
	l.log.Error("LLM call failed",
		"request_id", r.RequestId,
		"prompt_id", r.PromptId,
		"prompt_version", r.PromptVersion,
		"provider", r.Provider,
		"model_used", r.ModelUsed,
		"latency", r.Latency,
		"outcome", "error",
		"error_message", r.ErrorMessage,
	)
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// tokens keeps absent counts as explicit nulls in the record.
func tokens(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
