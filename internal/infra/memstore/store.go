// Package memstore is the in-memory persistence layer. The whole system
// state is a mutex-guarded list of hotel aggregates; the original design is
// strictly single-actor, so the lock exists only to make the HTTP surface
// safe, not to support real contention.
package memstore

import (
	"context"
	"errors"
	"strings"
	"sync"

	"hotelier/internal/domain/hotel"
)

var (
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrHotelAlreadyExists = errors.New("hotel already exists")
	ErrHotelNotEmpty      = errors.New("hotel has reservations")
)

// Store keeps hotels in insertion order. Aggregates are only ever touched
// inside Update/View closures so every access happens under the lock.
type Store struct {
	mu     sync.RWMutex
	hotels []*hotel.Hotel
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) CreateHotel(_ context.Context, h *hotel.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(h.Name()) != nil {
		return ErrHotelAlreadyExists
	}
	s.hotels = append(s.hotels, h)
	return nil
}

// RenameHotel enforces system-wide, case-insensitive name uniqueness.
func (s *Store) RenameHotel(_ context.Context, name, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.find(name)
	if h == nil {
		return ErrHotelNotFound
	}
	if other := s.find(newName); other != nil && other != h {
		return ErrHotelAlreadyExists
	}
	return h.Rename(newName)
}

func (s *Store) DeleteHotel(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, h := range s.hotels {
		if strings.EqualFold(h.Name(), name) {
			if h.HasReservations() {
				return ErrHotelNotEmpty
			}
			s.hotels = append(s.hotels[:i], s.hotels[i+1:]...)
			return nil
		}
	}
	return ErrHotelNotFound
}

// Update runs fn against the named aggregate under the write lock.
func (s *Store) Update(_ context.Context, name string, fn func(*hotel.Hotel) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.find(name)
	if h == nil {
		return ErrHotelNotFound
	}
	return fn(h)
}

// View runs fn against the named aggregate under the read lock. fn must not
// mutate the aggregate and must not let it escape the closure.
func (s *Store) View(_ context.Context, name string, fn func(*hotel.Hotel) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h := s.find(name)
	if h == nil {
		return ErrHotelNotFound
	}
	return fn(h)
}

// EachHotel visits every hotel in insertion order under the read lock.
func (s *Store) EachHotel(_ context.Context, fn func(*hotel.Hotel)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.hotels {
		fn(h)
	}
	return nil
}

func (s *Store) find(name string) *hotel.Hotel {
	for _, h := range s.hotels {
		if strings.EqualFold(h.Name(), name) {
			return h
		}
	}
	return nil
}
