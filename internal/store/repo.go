package store

import (
	"context"
	"time"
)

// WordRepo holds the word list imported with "wordguess words import".
type WordRepo interface {
	// ReplaceWords swaps the stored list for list and returns how many
	// words were kept. Blank entries are dropped.
	ReplaceWords(ctx context.Context, list []string) (int, error)

	// Words returns the stored list in import order.
	Words(ctx context.Context) ([]string, error)

	CountWords(ctx context.Context) (int, error)
}

// LLMRequestEventData captures the data for a single LLM request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	GameID       string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request.
type LLMEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts filters event queries.
type QueryOpts struct {
	Limit   int // max results (0 = unlimited)
	Purpose string
	GameID  string
}

// PurposeUsage aggregates LLM requests sharing a purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo appends and reads the LLM request log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns matching events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns the event with id, or nil if there is none.
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}
