package config

import "go.uber.org/atomic"

// Toggle is the process-wide injection switch. It is read once per response
// and may be flipped at any time by the host.
type Toggle struct {
	enabled *atomic.Bool
}

func NewToggle(enabled bool) *Toggle {
	return &Toggle{enabled: atomic.NewBool(enabled)}
}

func (t *Toggle) Enabled() bool {
	return t.enabled.Load()
}

func (t *Toggle) Set(enabled bool) {
	t.enabled.Store(enabled)
}
