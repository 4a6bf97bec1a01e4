package callback

import (
	"context"
	"errors"
	"testing"

	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/alert"
	alertmocks "github.com/NeuralTrust/FrontEndScanner/pkg/domain/alert/mocks"
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/apierror"
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/history"
	historymocks "github.com/NeuralTrust/FrontEndScanner/pkg/domain/history/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const callbackURL = "https://zap/frontEndScanner/callback"

func TestHandleCallback_Success(t *testing.T) {
	sink := alertmocks.NewSink(t)
	var got *alert.Alert
	sink.On("AlertFound", mock.Anything, mock.AnythingOfType("*alert.Alert"), history.Reference{ID: 7}).
		Run(func(args mock.Arguments) { got = args.Get(1).(*alert.Alert) }).
		Return(nil).Once()

	h := NewHandler(logrus.New(), sink, nil)
	body := `{"alert":{"historyReferenceId":7,"risk":2,"confidence":3,"name":"X","description":"Y"}}`

	require.NoError(t, h.HandleCallback(context.Background(), []byte(body), callbackURL))

	require.NotNil(t, got)
	assert.Equal(t, alert.SourcePassive, got.Source)
	assert.Equal(t, 50005, got.PluginID)
	assert.Equal(t, int64(7), got.HistoryReferenceID)
	assert.Equal(t, 2, got.Risk)
	assert.Equal(t, 3, got.Confidence)
	assert.Equal(t, "X", got.Name)
	assert.Equal(t, "Y", got.Description)
}

func TestHandleCallback_NumericStrings(t *testing.T) {
	sink := alertmocks.NewSink(t)
	sink.On("AlertFound", mock.Anything, mock.MatchedBy(func(a *alert.Alert) bool {
		return a.Risk == 1 && a.Confidence == 2 && a.HistoryReferenceID == 3
	}), mock.Anything).Return(nil).Once()

	h := NewHandler(logrus.New(), sink, nil)
	body := `{"alert":{"historyReferenceId":"3","risk":"1","confidence":"2","name":"n","description":"d"}}`

	assert.NoError(t, h.HandleCallback(context.Background(), []byte(body), callbackURL))
}

func TestHandleCallback_InvalidBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing risk", body: `{"alert":{"historyReferenceId":7,"confidence":3,"name":"X","description":"Y"}}`},
		{name: "missing name", body: `{"alert":{"historyReferenceId":7,"risk":2,"confidence":3,"description":"Y"}}`},
		{name: "missing description", body: `{"alert":{"historyReferenceId":7,"risk":2,"confidence":3,"name":"X"}}`},
		{name: "null confidence", body: `{"alert":{"historyReferenceId":7,"risk":2,"confidence":null,"name":"X","description":"Y"}}`},
		{name: "fractional risk", body: `{"alert":{"historyReferenceId":7,"risk":2.5,"confidence":3,"name":"X","description":"Y"}}`},
		{name: "non numeric id", body: `{"alert":{"historyReferenceId":"abc","risk":2,"confidence":3,"name":"X","description":"Y"}}`},
		{name: "object name", body: `{"alert":{"historyReferenceId":7,"risk":2,"confidence":3,"name":{},"description":"Y"}}`},
		{name: "alert not an object", body: `{"alert":"oops"}`},
		{name: "no alert", body: `{"finding":{}}`},
		{name: "malformed json", body: `{"alert":`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := alertmocks.NewSink(t)
			h := NewHandler(logrus.New(), sink, nil)

			err := h.HandleCallback(context.Background(), []byte(tt.body), callbackURL)

			apiErr, ok := apierror.As(err)
			require.True(t, ok)
			assert.Equal(t, apierror.URLNotFound, apiErr.Code)
			assert.Equal(t, callbackURL, apiErr.Message)
			sink.AssertNotCalled(t, "AlertFound", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandleCallback_ResolvesHistoryReference(t *testing.T) {
	resolver := historymocks.NewResolver(t)
	ref := &history.Reference{ID: 7, URL: "http://example.com/page"}
	resolver.On("Resolve", mock.Anything, int64(7)).Return(ref, nil).Once()

	sink := alertmocks.NewSink(t)
	sink.On("AlertFound", mock.Anything, mock.MatchedBy(func(a *alert.Alert) bool {
		return a.URL == "http://example.com/page"
	}), *ref).Return(nil).Once()

	h := NewHandler(logrus.New(), sink, resolver)
	body := `{"alert":{"historyReferenceId":7,"risk":2,"confidence":3,"name":"X","description":"Y"}}`

	assert.NoError(t, h.HandleCallback(context.Background(), []byte(body), callbackURL))
}

func TestHandleCallback_UnknownHistoryReference(t *testing.T) {
	resolver := historymocks.NewResolver(t)
	resolver.On("Resolve", mock.Anything, int64(99)).Return(nil, history.ErrReferenceNotFound).Once()
	sink := alertmocks.NewSink(t)

	h := NewHandler(logrus.New(), sink, resolver)
	body := `{"alert":{"historyReferenceId":99,"risk":2,"confidence":3,"name":"X","description":"Y"}}`

	err := h.HandleCallback(context.Background(), []byte(body), callbackURL)

	assert.True(t, apierror.Is(err, apierror.URLNotFound))
	assert.True(t, errors.Is(err, history.ErrReferenceNotFound))
}

func TestHandleCallback_ResolverReturnsNoReference(t *testing.T) {
	resolver := historymocks.NewResolver(t)
	resolver.On("Resolve", mock.Anything, int64(5)).Return(nil, nil).Once()
	sink := alertmocks.NewSink(t)

	h := NewHandler(logrus.New(), sink, resolver)
	body := `{"alert":{"historyReferenceId":5,"risk":2,"confidence":3,"name":"X","description":"Y"}}`

	var err error
	require.NotPanics(t, func() {
		err = h.HandleCallback(context.Background(), []byte(body), callbackURL)
	})

	assert.True(t, apierror.Is(err, apierror.URLNotFound))
	assert.True(t, errors.Is(err, history.ErrReferenceNotFound))
	sink.AssertNotCalled(t, "AlertFound", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleCallback_SinkFailure(t *testing.T) {
	sink := alertmocks.NewSink(t)
	sink.On("AlertFound", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

	h := NewHandler(logrus.New(), sink, nil)
	body := `{"alert":{"historyReferenceId":7,"risk":2,"confidence":3,"name":"X","description":"Y"}}`

	err := h.HandleCallback(context.Background(), []byte(body), callbackURL)
	assert.True(t, apierror.Is(err, apierror.URLNotFound))
}
