// Package extractor composes the heuristic pipeline into a single extraction
// call: contact channels, named sections, date ranges with aggregate
// experience, work entries, and loose job titles from one pass over plain
// resume text.
//
// The engine is stateless and never returns an error; pathological input
// yields empty collections, which callers must treat as "nothing detected",
// not as failure.
package extractor

import (
	"strings"

	"github.com/jonathan/resume-intel/internal/classify"
	"github.com/jonathan/resume-intel/internal/contact"
	"github.com/jonathan/resume-intel/internal/dates"
	"github.com/jonathan/resume-intel/internal/experience"
	"github.com/jonathan/resume-intel/internal/location"
	"github.com/jonathan/resume-intel/internal/sections"
	"github.com/jonathan/resume-intel/internal/types"
	"github.com/jonathan/resume-intel/internal/vocab"
	"github.com/jonathan/resume-intel/internal/workhistory"
)

// Engine runs the full extraction pipeline. Construct with New; the zero
// value is not usable.
type Engine struct {
	vocab   *vocab.Vocabulary
	dates   *dates.Parser
	loc     *location.Recognizer
	cls     *classify.Classifier
	contact *contact.Extractor
	builder *workhistory.Builder
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	vocab    *vocab.Vocabulary
	dateOpts []dates.Option
}

// WithVocabulary replaces the default built-in vocabulary.
func WithVocabulary(v *vocab.Vocabulary) Option {
	return func(cfg *engineConfig) {
		cfg.vocab = v
	}
}

// WithClock overrides the wall clock used to close "Present" date ranges.
// Production uses the real clock; tests freeze it for determinism.
func WithClock(clock dates.Clock) Option {
	return func(cfg *engineConfig) {
		cfg.dateOpts = append(cfg.dateOpts, dates.WithClock(clock))
	}
}

// New creates an extraction engine.
func New(opts ...Option) *Engine {
	cfg := &engineConfig{vocab: vocab.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	parser := dates.NewParser(cfg.dateOpts...)
	rec := location.NewRecognizer(cfg.vocab)
	cls := classify.New(cfg.vocab, parser, rec)

	return &Engine{
		vocab:   cfg.vocab,
		dates:   parser,
		loc:     rec,
		cls:     cls,
		contact: contact.NewExtractor(rec),
		builder: workhistory.NewBuilder(cls, rec),
	}
}

// Extract runs every component over text and returns the combined result.
// Identical input always produces an identical result for a fixed clock.
func (e *Engine) Extract(text string) types.ExtractionResult {
	ranges := e.collectRanges(text)

	return types.ExtractionResult{
		Contact:     e.contact.Extract(text),
		Sections:    sections.Segment(text, e.cls),
		Experience:  experience.Aggregate(ranges),
		WorkEntries: e.builder.Build(text),
		JobTitles:   workhistory.CollectTitles(text, e.vocab),
	}
}

// Classifier exposes the engine's line classifier for callers that need
// per-line categories alongside the structured result.
func (e *Engine) Classifier() *classify.Classifier {
	return e.cls
}

// collectRanges parses date ranges line by line and deduplicates ranges that
// several grammars recognized at the same start and end months.
func (e *Engine) collectRanges(text string) []types.DateRange {
	var ranges []types.DateRange
	seen := make(map[[2]int]bool)

	for _, line := range strings.Split(text, "\n") {
		for _, r := range e.dates.ParseRanges(line) {
			key := [2]int{r.Start.Index(), r.End.Index()}
			if seen[key] {
				continue
			}
			seen[key] = true
			ranges = append(ranges, r)
		}
	}

	return ranges
}
