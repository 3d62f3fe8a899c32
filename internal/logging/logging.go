package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Configure sets the level and the output format (text or json) of l.
// An empty level keeps the current one.
func Configure(l *logrus.Logger, level, format string) error {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}

		l.SetLevel(lvl)
	}

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}

// Setup configures the standard logger
func Setup(level, format string) error {
	return Configure(logrus.StandardLogger(), level, format)
}
