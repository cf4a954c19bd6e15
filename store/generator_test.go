package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerator_StrictlyIncreasing(t *testing.T) {
	req := require.New(t)
	gen := NewGenerator()

	prev := gen.Next()
	for i := 0; i < 10000; i++ {
		next := gen.Next()
		req.Greater(next.Timestamp(), prev.Timestamp(),
			"deux appels successifs doivent produire des timestamps strictement croissants")
		req.False(Timestamp(next).Before(Timestamp(prev)))
		prev = next
	}
}

func TestGenerator_TimestampRoundTrip(t *testing.T) {
	req := require.New(t)
	gen := NewGenerator()

	before := time.Now().Add(-time.Second)
	id := gen.Next()
	after := time.Now().Add(time.Second)

	embedded := Timestamp(id)
	req.True(embedded.After(before), "l'horodatage embarqué doit suivre l'horloge")
	req.True(embedded.Before(after))
	req.Equal(embedded, id.Time().UTC())
}

func TestGenerator_ConcurrentUniqueness(t *testing.T) {
	req := require.New(t)
	gen := NewGenerator()

	const goroutines = 8
	const perGoroutine = 2000

	var wg sync.WaitGroup
	results := make([][]string, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ids := make([]string, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				ids = append(ids, gen.Next().String())
			}
			results[g] = ids
		}(g)
	}
	wg.Wait()

	seen := make(map[string]struct{}, goroutines*perGoroutine)
	for _, ids := range results {
		for _, id := range ids {
			_, dup := seen[id]
			req.False(dup, "id dupliqué: %s", id)
			seen[id] = struct{}{}
		}
	}
	req.Len(seen, goroutines*perGoroutine)
}
