package history

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/history"
	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/cache"
	"go.uber.org/atomic"
)

type Repository interface {
	history.Repository
	RunJanitor(ctx context.Context, interval time.Duration)
}

type memoryRepository struct {
	refs   *cache.TTLMap[int64, history.Reference]
	lastID *atomic.Int64
}

// NewMemoryRepository keeps references for ttl after they are recorded.
// Ids are positive and increase monotonically for the life of the process.
func NewMemoryRepository(ttl time.Duration) Repository {
	return &memoryRepository{
		refs:   cache.NewTTLMap[int64, history.Reference](ttl),
		lastID: atomic.NewInt64(0),
	}
}

func (r *memoryRepository) Record(_ context.Context, ref history.Reference) (int64, error) {
	id := r.lastID.Inc()
	ref.ID = id
	if ref.CreatedAt.IsZero() {
		ref.CreatedAt = time.Now().UTC()
	}
	r.refs.Set(id, ref)
	return id, nil
}

func (r *memoryRepository) Resolve(_ context.Context, id int64) (*history.Reference, error) {
	ref, ok := r.refs.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", history.ErrReferenceNotFound, id)
	}
	return &ref, nil
}

// RunJanitor evicts expired references until ctx is cancelled.
func (r *memoryRepository) RunJanitor(ctx context.Context, interval time.Duration) {
	r.refs.RunJanitor(ctx, interval)
}
