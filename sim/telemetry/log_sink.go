package telemetry

import "github.com/sirupsen/logrus"

// LogSink writes every update through logrus at info level. It is the
// in-process stand-in for an external monitoring server.
type LogSink struct {
	logger *logrus.Logger
}

// NewLogSink creates a LogSink. A nil logger uses the logrus standard
// logger.
func NewLogSink(logger *logrus.Logger) *LogSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Start() error { return nil }

func (s *LogSink) Publish(machineID int, field string, value float64) error {
	s.logger.WithFields(logrus.Fields{
		"machine_id": machineID,
		"field":      field,
		"value":      value,
	}).Info("telemetry")
	return nil
}

func (s *LogSink) Stop() error { return nil }
