package mlog

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewTagsComponentAndRunID(t *testing.T) {
	e := New(logrus.InfoLevel)
	if e.Data["component"] != "TMRTriangularize" {
		t.Errorf("expected component field TMRTriangularize, got %v", e.Data["component"])
	}
	if e.Data["run_id"] == "" || e.Data["run_id"] == nil {
		t.Error("expected a non-empty run_id field")
	}
}

func TestNewRunsHaveDistinctRunIDs(t *testing.T) {
	a := New(logrus.InfoLevel)
	b := New(logrus.InfoLevel)
	if a.Data["run_id"] == b.Data["run_id"] {
		t.Error("expected distinct run ids across separate loggers")
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	cases := []struct {
		v    int
		want logrus.Level
	}{
		{-1, logrus.WarnLevel},
		{0, logrus.WarnLevel},
		{1, logrus.InfoLevel},
		{2, logrus.DebugLevel},
		{99, logrus.DebugLevel},
	}
	for _, c := range cases {
		if got := LevelFromVerbosity(c.v); got != c.want {
			t.Errorf("LevelFromVerbosity(%d): got %v, want %v", c.v, got, c.want)
		}
	}
}
