// Package logging wires logrus as the backend for the calculation engine's Logger.
package logging

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var logLevels = map[string]logrus.Level{
	"trace":    logrus.TraceLevel,
	"debug":    logrus.DebugLevel,
	"info":     logrus.InfoLevel,
	"warn":     logrus.WarnLevel,
	"error":    logrus.ErrorLevel,
	"critical": logrus.FatalLevel,
	"off":      logrus.PanicLevel,
}

// LevelNames returns the accepted --log-level values, sorted.
func LevelNames() []string {
	names := lo.Keys(logLevels)
	sort.Strings(names)
	return names
}

// ParseLevel maps a level name to a logrus level.
func ParseLevel(name string) (logrus.Level, error) {
	level, ok := logLevels[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return logrus.InfoLevel, fmt.Errorf("unknown log level %q (want one of %s)", name, strings.Join(LevelNames(), ", "))
	}
	return level, nil
}

// New returns a logger tagged with module=<module> writing to w at the named level.
// The returned entry satisfies calculation.Logger.
func New(w io.Writer, level, module string) (*logrus.Entry, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return l.WithField("module", module), nil
}
