package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLMap_SetGetExpire(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTTLMap[int64, string](time.Minute)
	m.now = func() time.Time { return now }

	m.Set(1, "a")
	v, ok := m.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	now = now.Add(2 * time.Minute)
	_, ok = m.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_Purge(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTTLMap[string, int](time.Minute)
	m.now = func() time.Time { return now }

	m.Set("old", 1)
	now = now.Add(90 * time.Second)
	m.Set("new", 2)

	assert.Equal(t, 1, m.Purge())
	assert.Equal(t, 1, m.Len())
	_, ok := m.Get("new")
	assert.True(t, ok)

	m.Delete("new")
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_Concurrent(t *testing.T) {
	m := NewTTLMap[int, int](time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Set(i, i)
			_, _ = m.Get(i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, m.Len())
}
