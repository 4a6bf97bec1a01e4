package listeners

import (
	"context"
	"errors"
	"testing"

	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/listeneriface/mocks"
	"github.com/NeuralTrust/FrontEndScanner/pkg/types"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	name    string
	order   int
	proceed bool
	panics  bool
	calls   *[]string
}

func (l *recordingListener) Name() string { return l.name }
func (l *recordingListener) Order() int   { return l.order }

func (l *recordingListener) OnHttpRequestSend(_ context.Context, _ *types.RequestContext) bool {
	*l.calls = append(*l.calls, "req:"+l.name)
	return l.proceed
}

func (l *recordingListener) OnHttpResponseReceive(_ context.Context, _ *types.RequestContext, resp *types.ResponseContext) bool {
	*l.calls = append(*l.calls, "resp:"+l.name)
	if l.panics {
		panic("listener failure")
	}
	resp.Body = append(resp.Body, []byte(l.name)...)
	return l.proceed
}

func TestManager_RunsListenersByOrder(t *testing.T) {
	var calls []string
	m := NewManager(logrus.New())
	require.NoError(t, m.Register(&recordingListener{name: "late", order: 10, proceed: true, calls: &calls}))
	require.NoError(t, m.Register(&recordingListener{name: "early", order: 0, proceed: true, calls: &calls}))

	resp := &types.ResponseContext{}
	assert.True(t, m.OnHttpRequestSend(context.Background(), &types.RequestContext{}))
	assert.True(t, m.OnHttpResponseReceive(context.Background(), &types.RequestContext{}, resp))

	assert.Equal(t, []string{"req:early", "req:late", "resp:early", "resp:late"}, calls)
	assert.Equal(t, "earlylate", string(resp.Body))
}

func TestManager_RegisterDuplicate(t *testing.T) {
	var calls []string
	m := NewManager(logrus.New())
	require.NoError(t, m.Register(&recordingListener{name: "a", calls: &calls}))

	err := m.Register(&recordingListener{name: "a", calls: &calls})
	assert.True(t, errors.Is(err, ErrListenerAlreadyRegistered))
	assert.Len(t, m.Listeners(), 1)
}

func TestManager_FalseStopsChain(t *testing.T) {
	var calls []string
	m := NewManager(logrus.New())
	require.NoError(t, m.Register(&recordingListener{name: "stop", order: 0, proceed: false, calls: &calls}))
	require.NoError(t, m.Register(&recordingListener{name: "never", order: 1, proceed: true, calls: &calls}))

	assert.False(t, m.OnHttpResponseReceive(context.Background(), &types.RequestContext{}, &types.ResponseContext{}))
	assert.Equal(t, []string{"resp:stop"}, calls)
}

func TestManager_PanicIsRecoveredAndChainContinues(t *testing.T) {
	var calls []string
	logger, hook := test.NewNullLogger()
	m := NewManager(logger)
	require.NoError(t, m.Register(&recordingListener{name: "broken", order: 0, panics: true, calls: &calls}))
	require.NoError(t, m.Register(&recordingListener{name: "next", order: 1, proceed: true, calls: &calls}))

	assert.True(t, m.OnHttpResponseReceive(context.Background(), &types.RequestContext{}, &types.ResponseContext{}))
	assert.Equal(t, []string{"resp:broken", "resp:next"}, calls)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "broken", hook.LastEntry().Data["listener"])
}

func TestManager_Unregister(t *testing.T) {
	listener := mocks.NewProxyListener(t)
	listener.On("Name").Return("mocked")
	listener.On("Order").Return(0).Maybe()

	m := NewManager(logrus.New())
	require.NoError(t, m.Register(listener))
	m.Unregister("mocked")

	assert.Empty(t, m.Listeners())
	assert.True(t, m.OnHttpResponseReceive(context.Background(), &types.RequestContext{}, &types.ResponseContext{}))
	listener.AssertNotCalled(t, "OnHttpResponseReceive", mock.Anything, mock.Anything, mock.Anything)
}
