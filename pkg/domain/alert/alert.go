package alert

import (
	"context"
	"time"

	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/history"
)

// PluginID is the identifier reported for every finding raised by injected
// client-side scripts.
const PluginID = 50005

type Source string

const SourcePassive Source = "passive"

type Alert struct {
	PluginID           int       `json:"plugin_id"`
	Risk               int       `json:"risk"`
	Confidence         int       `json:"confidence"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Source             Source    `json:"source"`
	HistoryReferenceID int64     `json:"history_reference_id"`
	URL                string    `json:"url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// New builds a passive finding for the given transaction.
func New(historyReferenceID int64, risk, confidence int, name, description string) *Alert {
	return &Alert{
		PluginID:           PluginID,
		Risk:               risk,
		Confidence:         confidence,
		Name:               name,
		Description:        description,
		Source:             SourcePassive,
		HistoryReferenceID: historyReferenceID,
		CreatedAt:          time.Now().UTC(),
	}
}

//go:generate mockery --name=Sink --dir=. --output=./mocks --filename=sink_mock.go --case=underscore --with-expecter
type Sink interface {
	AlertFound(ctx context.Context, a *Alert, ref history.Reference) error
}
