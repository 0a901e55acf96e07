package meshconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	o := Default()
	if o.QualityThreshold != 1.0 {
		t.Errorf("expected default QualityThreshold 1.0, got %v", o.QualityThreshold)
	}
	if o.MaxInsertions != 200000 {
		t.Errorf("expected default MaxInsertions 200000, got %v", o.MaxInsertions)
	}
}

func TestNewWithOptions(t *testing.T) {
	o := New(WithQualityThreshold(2.0), WithMaxInsertions(50), WithSmoothEvery(10))
	if o.QualityThreshold != 2.0 {
		t.Errorf("expected QualityThreshold 2.0, got %v", o.QualityThreshold)
	}
	if o.MaxInsertions != 50 {
		t.Errorf("expected MaxInsertions 50, got %v", o.MaxInsertions)
	}
	if o.SmoothEvery != 10 {
		t.Errorf("expected SmoothEvery 10, got %v", o.SmoothEvery)
	}
	// untouched fields keep their Default value
	if o.CoverMargin != Default().CoverMargin {
		t.Errorf("expected untouched CoverMargin to stay default, got %v", o.CoverMargin)
	}
}

func TestLoadPartialYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yaml")
	content := "quality_threshold: 1.5\nmax_insertions: 1000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	o, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.QualityThreshold != 1.5 {
		t.Errorf("expected QualityThreshold 1.5, got %v", o.QualityThreshold)
	}
	if o.MaxInsertions != 1000 {
		t.Errorf("expected MaxInsertions 1000, got %v", o.MaxInsertions)
	}
	// omitted fields fall back to Default()
	if o.SnapFraction != Default().SnapFraction {
		t.Errorf("expected omitted SnapFraction to default, got %v", o.SnapFraction)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/opts.yaml"); err == nil {
		t.Fatal("expected error loading a missing file")
	}
}
