// Package token estimates the tokenizer cost of text sent to the
// generation service.
package token

import (
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// encodingModel selects the tokenizer vocabulary. It must stay
// compatible with the target generation service.
const encodingModel = "gpt-4"

// Estimator converts text into an approximate or exact token count.
// Implementations never fail outward; empty text always counts as 0.
type Estimator interface {
	Estimate(text string) int
}

// Approx estimates roughly four characters per token. Used when the
// exact tokenizer is unavailable.
type Approx struct{}

// Estimate returns ceil(chars/4).
func (Approx) Estimate(text string) int {
	if text == "" {
		return 0
	}
	return (utf8.RuneCountInString(text) + 3) / 4
}

// exact wraps a tiktoken encoding for exact counts.
type exact struct {
	enc *tiktoken.Tiktoken
}

func (e *exact) Estimate(text string) int {
	if text == "" {
		return 0
	}
	return len(e.enc.Encode(text, nil, nil))
}

var (
	sharedOnce sync.Once
	shared     Estimator
)

// Shared returns the process-wide estimator. The tiktoken encoding is
// expensive to construct, so it is initialized once on first use and
// reused; after initialization it is read-only and safe to share.
// When initialization fails the estimator silently degrades to Approx.
func Shared(logger *slog.Logger) Estimator {
	sharedOnce.Do(func() {
		enc, err := tiktoken.EncodingForModel(encodingModel)
		if err != nil {
			logger.Warn("tokenizer unavailable, falling back to approximate estimates",
				"model", encodingModel,
				"error", err,
			)
			shared = Approx{}
			return
		}
		shared = &exact{enc: enc}
	})
	return shared
}
