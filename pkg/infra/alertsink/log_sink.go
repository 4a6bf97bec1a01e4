package alertsink

import (
	"context"

	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/alert"
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/history"
	"github.com/sirupsen/logrus"
)

type logSink struct {
	logger *logrus.Logger
}

func NewLogSink(logger *logrus.Logger) alert.Sink {
	return &logSink{logger: logger}
}

func (s *logSink) AlertFound(_ context.Context, a *alert.Alert, ref history.Reference) error {
	s.logger.WithFields(logrus.Fields{
		"plugin_id":            a.PluginID,
		"risk":                 a.Risk,
		"confidence":           a.Confidence,
		"name":                 a.Name,
		"description":          a.Description,
		"source":               a.Source,
		"history_reference_id": a.HistoryReferenceID,
		"url":                  ref.URL,
	}).Warn("alert found")
	return nil
}
