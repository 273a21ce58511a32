package cli

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"pit/internal/config"
	"pit/internal/domain"
)

// NewLogger builds the harness logger from the logging section
func NewLogger(cfg config.LoggingConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, domain.NewConfigError("logging.level", err.Error(), err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return logger, nil
}
