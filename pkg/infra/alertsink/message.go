package alertsink

import (
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/alert"
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/history"
)

// Message is the envelope written to redis for every finding.
type Message struct {
	Type      string            `json:"type"`
	Alert     *alert.Alert      `json:"alert"`
	Reference history.Reference `json:"reference"`
}

const MessageTypeAlertFound = "alert_found"
