package history

import (
	"context"
	"errors"
	"time"
)

var ErrReferenceNotFound = errors.New("history reference not found")

// Reference identifies one proxied transaction that findings can be attached to.
type Reference struct {
	ID         int64     `json:"id"`
	Method     string    `json:"method,omitempty"`
	URL        string    `json:"url,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

//go:generate mockery --name=Resolver --dir=. --output=./mocks --filename=resolver_mock.go --case=underscore --with-expecter
type Resolver interface {
	Resolve(ctx context.Context, id int64) (*Reference, error)
}

type Recorder interface {
	// Record stores ref under a fresh id and returns it.
	Record(ctx context.Context, ref Reference) (int64, error)
}

type Repository interface {
	Resolver
	Recorder
}
