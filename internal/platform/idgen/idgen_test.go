package idgen

import (
	"sync"
	"testing"
)

func TestNextRecID_Monotonic(t *testing.T) {
	g := New()
	prev := int64(0)
	for i := 0; i < 100; i++ {
		id := g.NextRecID()
		if id != prev+1 {
			t.Fatalf("expected %d, got %d", prev+1, id)
		}
		prev = id
	}
}

func TestNextRecID_ConcurrentUnique(t *testing.T) {
	g := New()
	const workers = 8
	const perWorker = 500

	ids := make([][]int64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids[w] = append(ids[w], g.NextRecID())
			}
		}()
	}
	wg.Wait()

	seen := make(map[int64]bool, workers*perWorker)
	for _, chunk := range ids {
		for _, id := range chunk {
			if seen[id] {
				t.Fatalf("duplicate rec id %d", id)
			}
			seen[id] = true
		}
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d ids, got %d", workers*perWorker, len(seen))
	}
}

func TestNewGUID_Unique(t *testing.T) {
	g := New()
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		guid := g.NewGUID()
		if guid == "" {
			t.Fatalf("empty guid")
		}
		if seen[guid] {
			t.Fatalf("duplicate guid %s", guid)
		}
		seen[guid] = true
	}
}
