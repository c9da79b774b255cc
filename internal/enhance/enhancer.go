// Package enhance orchestrates the enhancement pipeline: normalize
// locally, optionally enrich remotely, fall back to the local result on
// any remote failure. This is the single place remote errors are caught;
// nothing past the blank-input check is ever fatal.
package enhance

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"promptforge/internal/analysis"
	"promptforge/internal/lexicon"
	"promptforge/internal/logging"
	"promptforge/internal/types"
)

// ErrEmptyPrompt is returned when the raw prompt is blank. This is the
// only user-visible failure of Improve.
var ErrEmptyPrompt = errors.New("enhance: prompt is empty")

// Source identifies which path produced the final text.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Enricher is the remote collaborator. The concrete client lives in
// internal/enrich; tests substitute their own.
type Enricher interface {
	Enhance(ctx context.Context, prompt string, conv *types.ConversationContext) (string, error)
}

// Result is the outcome of one enhancement call.
type Result struct {
	// Text is the enhanced prompt. Never empty for non-empty input.
	Text string

	// Source is SourceRemote when remote enrichment supplied the text,
	// SourceLocal otherwise (including remote-degraded calls).
	Source string

	// Changed is false when the final text equals the raw input, i.e.
	// the call was a no-op.
	Changed bool
}

// Enhancer runs the pipeline. A nil client means local-only operation.
type Enhancer struct {
	client Enricher
}

// New creates an Enhancer. client may be nil when remote enrichment is
// not configured.
func New(client Enricher) *Enhancer {
	return &Enhancer{client: client}
}

// Improve runs the linear pipeline: normalize, optionally enrich
// remotely, fall back to the normalized text when the remote path fails
// for any reason (cancellation included). All data is request-scoped.
func (e *Enhancer) Improve(ctx context.Context, raw string, conv *types.ConversationContext, useRemote bool) (*Result, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyPrompt
	}

	reqID := shortID()
	logging.EnhanceDebug("[%s] Improve: raw_len=%d use_remote=%v", reqID, len(raw), useRemote)

	corrected := lexicon.Correct(raw)

	if useRemote && e.client != nil {
		enriched, err := e.client.Enhance(ctx, corrected, conv)
		if err == nil {
			logging.Enhance("[%s] Improve: remote enrichment succeeded, len=%d", reqID, len(enriched))
			return &Result{
				Text:    enriched,
				Source:  SourceRemote,
				Changed: enriched != raw,
			}, nil
		}
		// Every remote failure degrades to the local result. The caller
		// can inspect Source to surface the degradation.
		logging.EnhanceWarn("[%s] Improve: remote enrichment failed, using local result: %v", reqID, err)
	} else if useRemote {
		logging.EnhanceWarn("[%s] Improve: remote requested but no client configured", reqID)
	}

	logging.Enhance("[%s] Improve: local result, len=%d changed=%v", reqID, len(corrected), corrected != raw)
	return &Result{
		Text:    corrected,
		Source:  SourceLocal,
		Changed: corrected != raw,
	}, nil
}

// Structure runs the local structural path: normalize, analyze into
// slots, apply defaults, and render the labeled multi-section block.
// When the input is not task-like the corrected flowing text is returned
// with a nil StructuredPrompt.
func (e *Enhancer) Structure(raw string) (string, *types.StructuredPrompt, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil, ErrEmptyPrompt
	}

	corrected := lexicon.Correct(raw)

	partial := analysis.Analyze(corrected)
	if partial.Task == "" {
		logging.AnalysisDebug("Structure: input not task-like, returning corrected text")
		return corrected, nil, nil
	}

	sp := analysis.ApplyDefaults(partial)
	logging.Analysis("Structure: task extracted, %d slots inferred", len(sp.InferredMissingDetails))
	return analysis.Format(sp), &sp, nil
}

// shortID returns a compact request correlation ID for log lines.
func shortID() string {
	return uuid.NewString()[:8]
}
