package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_RecordAndResolve(t *testing.T) {
	repo := NewMemoryRepository(time.Minute)
	ctx := context.Background()

	first, err := repo.Record(ctx, history.Reference{Method: "GET", URL: "http://example.com/", StatusCode: 200})
	require.NoError(t, err)
	second, err := repo.Record(ctx, history.Reference{Method: "GET", URL: "http://example.com/b"})
	require.NoError(t, err)
	assert.Greater(t, second, first)

	ref, err := repo.Resolve(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first, ref.ID)
	assert.Equal(t, "http://example.com/", ref.URL)
	assert.False(t, ref.CreatedAt.IsZero())
}

func TestMemoryRepository_UnknownID(t *testing.T) {
	repo := NewMemoryRepository(time.Minute)
	_, err := repo.Resolve(context.Background(), 42)
	assert.True(t, errors.Is(err, history.ErrReferenceNotFound))
}

func TestMemoryRepository_Expiry(t *testing.T) {
	repo := NewMemoryRepository(10 * time.Millisecond)
	id, err := repo.Record(context.Background(), history.Reference{URL: "http://example.com/"})
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)
	_, err = repo.Resolve(context.Background(), id)
	assert.True(t, errors.Is(err, history.ErrReferenceNotFound))
}
