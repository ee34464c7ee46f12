package pipeline

import (
	"testing"

	"github.com/desenhapp/svgprep/pkg/validate"
)

func TestReport_Totals(t *testing.T) {
	r := NewReport()
	if r.RunID == "" {
		t.Fatal("RunID is empty")
	}

	r.Add(FileReport{Path: "a.svg", Result: &validate.Result{Valid: true}})
	r.Add(FileReport{Path: "b.svg", Result: &validate.Result{
		Valid:    false,
		Errors:   []string{"ID duplicado encontrado: area-1"},
		Warnings: []string{"aviso"},
	}, CacheHit: true})
	r.Add(FileReport{Path: "c.svg", Err: "no <svg> element found"})
	r.Finish()

	want := ReportTotals{Files: 3, Valid: 1, Invalid: 1, Failed: 1, Warnings: 1, CacheHits: 1}
	if r.Totals != want {
		t.Errorf("Totals = %+v, want %+v", r.Totals, want)
	}
	if r.AllValid() {
		t.Error("AllValid() = true, want false")
	}
	if r.Duration <= 0 {
		t.Errorf("Duration = %v, want > 0", r.Duration)
	}
}

func TestReport_AllValid(t *testing.T) {
	r := NewReport()
	r.Add(FileReport{Path: "a.svg", Result: &validate.Result{Valid: true}})
	if !r.AllValid() {
		t.Error("AllValid() = false, want true")
	}
}

func TestReport_UniqueRunIDs(t *testing.T) {
	if NewReport().RunID == NewReport().RunID {
		t.Error("two reports share a RunID")
	}
}
