package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/service/readers"
)

// Phase names in execution order. Samples need the curriculum created by
// the settings phase; allowed lists are imported last so stage matching
// sees the final settings.
const (
	PhaseSettings = "settings"
	PhaseSamples  = "samples"
	PhaseAllowed  = "allowed"
)

var allPhases = []string{PhaseSettings, PhaseSamples, PhaseAllowed}

// Target receives the imported documents. The readers service and Offline
// implement it.
type Target interface {
	SaveSettings(ctx context.Context, input readers.SaveSettingsInput) (*domain.Curriculum, error)
	AddSample(ctx context.Context, input readers.AddSampleInput) (*domain.SampleText, error)
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Imported int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline imports a manifest into a Target phase by phase.
type Pipeline struct {
	log      *slog.Logger
	target   Target
	manifest *Manifest
	cfg      Config
	results  map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, target Target, manifest *Manifest, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log,
		target:   target,
		manifest: manifest,
		cfg:      cfg,
		results:  make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. Unknown phase names are an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseSettings:
			result = p.runSettings(ctx)
		case PhaseSamples:
			result = p.runSamples(ctx, domain.SampleKindSample)
		case PhaseAllowed:
			result = p.runSamples(ctx, domain.SampleKindAllowed)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil || result.Errors > 0 {
			attrs := []any{
				slog.String("phase", phase),
				slog.Int("imported", result.Imported),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			}
			if result.Err != nil {
				attrs = append(attrs, slog.String("error", result.Err.Error()))
			}
			p.log.Warn("phase failed", attrs...)
			if p.cfg.StopOnError {
				return fmt.Errorf("phase %s failed", phase)
			}
			continue
		}

		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("imported", result.Imported),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		filter[ph] = true
	}
	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
			delete(filter, ph)
		}
	}
	if len(filter) > 0 {
		unknown := make([]error, 0, len(filter))
		for ph := range filter {
			unknown = append(unknown, fmt.Errorf("unknown phase %q", ph))
		}
		return nil, errors.Join(unknown...)
	}
	return out, nil
}

func (p *Pipeline) runSettings(ctx context.Context) PhaseResult {
	var result PhaseResult
	for _, src := range p.manifest.Curricula {
		log := p.log.With(slog.String("curriculum", src.Name))

		data, err := os.ReadFile(src.Settings)
		if err != nil {
			log.Warn("read settings", slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		if _, err := p.target.SaveSettings(ctx, readers.SaveSettingsInput{Name: src.Name, Settings: data}); err != nil {
			log.Warn("save settings", slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		result.Imported++
	}
	return result
}

func (p *Pipeline) runSamples(ctx context.Context, kind domain.SampleKind) PhaseResult {
	var result PhaseResult
	for _, src := range p.manifest.Curricula {
		patterns := src.Samples
		if kind == domain.SampleKindAllowed {
			patterns = src.Allowed
		}
		if len(patterns) == 0 {
			result.Skipped++
			continue
		}

		log := p.log.With(slog.String("curriculum", src.Name), slog.String("kind", kind.String()))

		files, err := expand(patterns)
		if err != nil {
			log.Warn("list files", slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		for _, f := range files {
			content, err := os.ReadFile(f)
			if err != nil {
				log.Warn("read file", slog.String("file", f), slog.String("error", err.Error()))
				result.Errors++
				continue
			}

			_, err = p.target.AddSample(ctx, readers.AddSampleInput{
				Curriculum: src.Name,
				FileName:   filepath.Base(f),
				Kind:       kind,
				Content:    string(content),
			})
			if err != nil {
				log.Warn("add sample", slog.String("file", f), slog.String("error", err.Error()))
				result.Errors++
				continue
			}
			result.Imported++
		}
	}
	return result
}
