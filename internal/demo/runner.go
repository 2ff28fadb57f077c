package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/calculator/internal/domain/arith"
	"github.com/phrazzld/calculator/internal/platform/logger"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Header is the first line of the text rendering.
const Header = "=== Calculator Demo ==="

// Result is the outcome of one example.
type Result struct {
	Label    string    `json:"label"`
	Op       string    `json:"operation"`
	Args     []float64 `json:"operands"`
	Value    string    `json:"value,omitempty"`
	Err      error     `json:"-"`
	ErrorMsg string    `json:"error,omitempty"`
}

// Report is the outcome of a whole demonstration run.
type Report struct {
	RunID   uuid.UUID `json:"run_id"`
	Results []Result  `json:"results"`
}

// Failed returns the number of examples that produced an error.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Runner evaluates examples through a Calculator.
type Runner struct {
	calc     arith.Calculator
	examples []Example
}

// NewRunner creates a Runner for the given examples.
// A nil examples slice means DefaultExamples.
func NewRunner(calc arith.Calculator, examples []Example) *Runner {
	if examples == nil {
		examples = DefaultExamples()
	}
	return &Runner{
		calc:     calc,
		examples: examples,
	}
}

// Run evaluates every example in order. A failing example is recorded on its
// Result and does not stop the run. Run stops early only when ctx is done.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:   uuid.New(),
		Results: make([]Result, 0, len(r.examples)),
	}

	log := logger.FromContext(ctx).With(slog.String("run_id", report.RunID.String()))
	log.Info("starting calculator demo", slog.Int("examples", len(r.examples)))

	for _, ex := range r.examples {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("demo run interrupted: %w", err)
		}

		res := Result{Label: ex.Label, Op: ex.Op, Args: ex.Args}
		value, err := evaluate(r.calc, ex)
		if err != nil {
			res.Err = err
			res.ErrorMsg = err.Error()
			log.Warn("example failed",
				slog.String("label", ex.Label),
				slog.String("operation", ex.Op),
				slog.Any("error", err))
		} else {
			res.Value = value
			log.Debug("example evaluated",
				slog.String("label", ex.Label),
				slog.String("operation", ex.Op),
				slog.String("value", value))
		}
		report.Results = append(report.Results, res)
	}

	log.Info("calculator demo finished",
		slog.Int("evaluated", len(report.Results)),
		slog.Int("failed", report.Failed()))

	return report, nil
}

// Render writes report to w in the given format.
func Render(w io.Writer, report *Report, format string) error {
	switch format {
	case FormatText:
		return renderText(w, report)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderText(w io.Writer, report *Report) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	for _, res := range report.Results {
		line := res.Label + " = " + res.Value
		if res.Err != nil {
			line = res.Label + " failed: " + res.ErrorMsg
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
