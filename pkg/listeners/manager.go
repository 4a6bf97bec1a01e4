package listeners

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/listeneriface"
	"github.com/NeuralTrust/FrontEndScanner/pkg/types"
	"github.com/sirupsen/logrus"
)

var ErrListenerAlreadyRegistered = errors.New("listener already registered")

type Manager interface {
	Register(listener listeneriface.ProxyListener) error
	Unregister(name string)
	Listeners() []listeneriface.ProxyListener
	OnHttpRequestSend(ctx context.Context, req *types.RequestContext) bool
	OnHttpResponseReceive(ctx context.Context, req *types.RequestContext, resp *types.ResponseContext) bool
}

type manager struct {
	mu        sync.RWMutex
	logger    *logrus.Logger
	listeners []listeneriface.ProxyListener
}

func NewManager(logger *logrus.Logger) Manager {
	return &manager{logger: logger}
}

func (m *manager) Register(listener listeneriface.ProxyListener) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name := listener.Name()
	for _, l := range m.listeners {
		if l.Name() == name {
			return fmt.Errorf("%w: %s", ErrListenerAlreadyRegistered, name)
		}
	}
	m.listeners = append(m.listeners, listener)
	sort.SliceStable(m.listeners, func(i, j int) bool {
		return m.listeners[i].Order() < m.listeners[j].Order()
	})
	return nil
}

func (m *manager) Unregister(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, l := range m.listeners {
		if l.Name() == name {
			m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns a snapshot of the chain in execution order.
func (m *manager) Listeners() []listeneriface.ProxyListener {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]listeneriface.ProxyListener, len(m.listeners))
	copy(out, m.listeners)
	return out
}

func (m *manager) OnHttpRequestSend(ctx context.Context, req *types.RequestContext) bool {
	for _, l := range m.Listeners() {
		if !m.run(l, func() bool { return l.OnHttpRequestSend(ctx, req) }) {
			return false
		}
	}
	return true
}

func (m *manager) OnHttpResponseReceive(ctx context.Context, req *types.RequestContext, resp *types.ResponseContext) bool {
	for _, l := range m.Listeners() {
		if !m.run(l, func() bool { return l.OnHttpResponseReceive(ctx, req, resp) }) {
			return false
		}
	}
	return true
}

// run invokes a single hook. A panicking listener is logged and skipped so the
// rest of the chain still sees the message.
func (m *manager) run(l listeneriface.ProxyListener, hook func() bool) (proceed bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.WithField("listener", l.Name()).Errorf("listener panicked: %v", r)
			proceed = true
		}
	}()
	proceed = hook()
	if !proceed {
		m.logger.WithField("listener", l.Name()).Debug("listener stopped the chain")
	}
	return proceed
}
