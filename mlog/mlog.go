// Package mlog is the kernel's structured logger: a logrus.Entry
// permanently tagged with a TMRTriangularize component field and a
// per-run uuid, so log lines from concurrent or repeated triangulation
// runs can be told apart.
package mlog

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// New returns a logger for one Triangulator run, tagged with a fresh
// run id and the fixed TMRTriangularize component name.
func New(level logrus.Level) *logrus.Entry {
	base := logrus.New()
	base.SetLevel(level)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return base.WithFields(logrus.Fields{
		"component": "TMRTriangularize",
		"run_id":    uuid.NewString(),
	})
}

// LevelFromVerbosity maps the kernel's integer PrintLevel (§ meshconfig)
// onto a logrus level: 0 and below log warnings and errors only, 1 adds
// info lines, and higher values add debug lines.
func LevelFromVerbosity(v int) logrus.Level {
	switch {
	case v <= 0:
		return logrus.WarnLevel
	case v == 1:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}
