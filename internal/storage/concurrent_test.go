package storage

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"event-portal/internal/domain"
)

func TestConcurrentAppend(t *testing.T) {
	kv := newSQLiteKV(t)
	s := NewRegistrationStore(kv)
	ctx := context.Background()

	// Launch 100 goroutines appending to the same durable list.
	numRequests := 100
	var errorCount int32

	var wg sync.WaitGroup
	wg.Add(numRequests)

	for i := 0; i < numRequests; i++ {
		go func(requestID int) {
			defer wg.Done()

			reg := domain.Registration{
				EventID:     1 + requestID%4,
				StudentName: fmt.Sprintf("student%d", requestID),
				Email:       fmt.Sprintf("gopher%d@example.com", requestID),
				Tickets:     1,
			}
			if err := s.Append(ctx, reg); err != nil {
				t.Logf("Unexpected error for request %d: %v", requestID, err)
				atomic.AddInt32(&errorCount, 1)
			}
		}(i)
	}

	wg.Wait()

	if errorCount != 0 {
		t.Errorf("Expected 0 unexpected errors, but got %d", errorCount)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list registrations: %v", err)
	}

	// No lost updates: every append survives the read-modify-write.
	if len(list) != numRequests {
		t.Errorf("Expected exactly %d registrations, but got %d", numRequests, len(list))
	}

	seen := make(map[string]bool, len(list))
	for _, r := range list {
		seen[r.Email] = true
	}
	if len(seen) != numRequests {
		t.Errorf("Expected %d distinct emails, but got %d", numRequests, len(seen))
	}
}
