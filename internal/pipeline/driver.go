package pipeline

import (
	"fmt"

	"go-posting-cleaner/internal/extract"
	"go-posting-cleaner/internal/format"
	"go-posting-cleaner/internal/models"
	"go-posting-cleaner/internal/output"

	"github.com/rs/zerolog"
)

// Result is what one pipeline run hands back to its caller
type Result struct {
	Record    models.PostingRecord `json:"record"`
	Formatted string               `json:"formatted"`
}

// Driver runs extraction and formatting for one posting at a time.
// It keeps no state between calls, so one Driver can serve concurrent callers.
type Driver struct {
	logger zerolog.Logger
	writer output.Writer
}

type Option func(*Driver)

// WithLogger sets where progress and the extracted summary are reported
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithWriter replaces the filesystem writer used by Run
func WithWriter(w output.Writer) Option {
	return func(d *Driver) {
		d.writer = w
	}
}

func New(opts ...Option) *Driver {
	d := &Driver{
		logger: zerolog.Nop(),
		writer: output.File{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Process extracts the fields of text and renders the clean posting.
func (d *Driver) Process(text string) Result {
	d.logger.Info().Int("bytes", len(text)).Msg("🚀 Processing job posting...")

	rec := extract.Extract(text)
	d.logger.Info().
		Str("company", rec.Company).
		Str("email", rec.Email).
		Str("deadline", rec.Deadline).
		Int("requirements", len(rec.Requirements)).
		Bool("testimonial", rec.HasTestimonial()).
		Msg("📋 Extracted information")

	formatted := format.Posting(rec)
	d.logger.Debug().Msgf("📝 Formatted job posting:\n%s", formatted)

	return Result{Record: rec, Formatted: formatted}
}

// Run processes text and saves the formatted posting to outputPath.
// The result is returned even when saving fails, together with the wrapped I/O error.
func (d *Driver) Run(text, outputPath string) (Result, error) {
	res := d.Process(text)

	if err := d.writer.WriteFile(outputPath, res.Formatted); err != nil {
		d.logger.Error().Err(err).Str("path", outputPath).Msg("❌ Failed to save clean posting")
		return res, fmt.Errorf("failed to save posting to %s: %w", outputPath, err)
	}
	d.logger.Info().Str("path", outputPath).Msg("💾 Clean posting saved")

	return res, nil
}
