package reservation

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// StubSubmitter records submissions for tests. Started/Release let a test
// hold a submission in flight.
type StubSubmitter struct {
	mu       sync.Mutex
	Requests []EventRequest
	Err      error
	EventId  string
	Started  chan struct{}
	Release  chan struct{}
}

func (s *StubSubmitter) SubmitEvent(ctx context.Context, request EventRequest) (string, error) {
	s.mu.Lock()
	s.Requests = append(s.Requests, request)
	s.mu.Unlock()

	if s.Started != nil {
		s.Started <- struct{}{}
	}
	if s.Release != nil {
		<-s.Release
	}

	if s.Err != nil {
		return "", s.Err
	}
	if s.EventId != "" {
		return s.EventId, nil
	}
	return uuid.NewString(), nil
}

func (s *StubSubmitter) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Requests)
}

func (s *StubSubmitter) LastRequest() EventRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Requests[len(s.Requests)-1]
}
