package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrIdempotencyInProgress = errors.New("request with this idempotency key is in progress")
	ErrIdempotencyNotFound   = errors.New("idempotency key not found")
)

// BookingRef points at a completed booking so a retried request can replay
// the original reservation instead of double-booking.
type BookingRef struct {
	HotelName     string
	ReservationID int64
}

type idempotencyRecord struct {
	ref       *BookingRef
	expiresAt time.Time
}

type IdempotencyStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*idempotencyRecord
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{
		records: make(map[uuid.UUID]*idempotencyRecord),
	}
}

// Begin claims the key. It returns the stored ref when a previous request
// already completed, ErrIdempotencyInProgress when one is still running, and
// (nil, nil) when the key is fresh and now owned by the caller.
func (s *IdempotencyStore) Begin(_ context.Context, key uuid.UUID, now time.Time, ttl time.Duration) (*BookingRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[key]; ok && now.Before(rec.expiresAt) {
		if rec.ref == nil {
			return nil, ErrIdempotencyInProgress
		}
		return rec.ref, nil
	}
	s.records[key] = &idempotencyRecord{expiresAt: now.Add(ttl)}
	return nil, nil
}

func (s *IdempotencyStore) Complete(_ context.Context, key uuid.UUID, ref BookingRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return ErrIdempotencyNotFound
	}
	rec.ref = &ref
	return nil
}

// Abort releases the key after a failed booking so the client can retry.
func (s *IdempotencyStore) Abort(_ context.Context, key uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[key]; ok && rec.ref == nil {
		delete(s.records, key)
	}
}
