package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/desenhapp/svgprep/pkg/validate"
)

// FileReport is the validation outcome for one file of a batch run.
type FileReport struct {
	// Path is the file path as given to the batch.
	Path string `json:"path"`

	// Result is the validation report, nil when the file failed to parse.
	Result *validate.Result `json:"result,omitempty"`

	// Err is the parse or read failure, "" on success.
	Err string `json:"error,omitempty"`

	// CacheHit reports whether the result came from the cache.
	CacheHit bool `json:"cache_hit"`
}

// ReportTotals aggregates a batch run.
type ReportTotals struct {
	Files     int `json:"files"`
	Valid     int `json:"valid"`
	Invalid   int `json:"invalid"`
	Failed    int `json:"failed"`
	Warnings  int `json:"warnings"`
	CacheHits int `json:"cache_hits"`
}

// Report is the outcome of validating a set of files in one run.
type Report struct {
	// RunID uniquely identifies the batch run in logs and exports.
	RunID string `json:"run_id"`

	// StartedAt is the wall-clock start of the run.
	StartedAt time.Time `json:"started_at"`

	// Duration is the total run time, set by Finish.
	Duration time.Duration `json:"duration"`

	Files  []FileReport `json:"files"`
	Totals ReportTotals `json:"totals"`
}

// NewReport starts an empty batch report with a fresh run identifier.
func NewReport() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// Add records one file outcome and updates the totals.
func (r *Report) Add(fr FileReport) {
	r.Files = append(r.Files, fr)
	r.Totals.Files++
	if fr.CacheHit {
		r.Totals.CacheHits++
	}
	switch {
	case fr.Err != "":
		r.Totals.Failed++
	case fr.Result != nil && fr.Result.Valid:
		r.Totals.Valid++
		r.Totals.Warnings += len(fr.Result.Warnings)
	default:
		r.Totals.Invalid++
		if fr.Result != nil {
			r.Totals.Warnings += len(fr.Result.Warnings)
		}
	}
}

// Finish stamps the total duration.
func (r *Report) Finish() {
	r.Duration = time.Since(r.StartedAt)
}

// AllValid reports whether every file validated cleanly.
func (r *Report) AllValid() bool {
	return r.Totals.Invalid == 0 && r.Totals.Failed == 0
}
