package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger writing to w with the configured level
// and format.
func NewLogger(c LogConfig, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	if c.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	return logger, nil
}
