// Package store owns the volatile per-user state of a demo bot: shopping
// carts, booking records and usage statistics. Nothing survives a restart.
package store

import (
	"sync"
	"time"

	"github.com/m3rciful/demobot/bot/catalog"
)

// Booking is a confirmed service reservation.
type Booking struct {
	Service string
	Slot    string
	Date    time.Time
	Price   int
}

// UserStats aggregates per-user activity consumed by the admin panel.
type UserStats struct {
	Dispatches int
	Sessions   int
	LastActive time.Time
}

// Snapshot is the aggregate view rendered by the admin statistics panel.
type Snapshot struct {
	TotalUsers    int
	ActiveUsers   int
	ActiveCarts   int
	TotalBookings int
	Dispatches    int
	Sessions      int
}

// Store holds all mutable bot state behind a single lock. Handlers for two
// events of the same user may run concurrently; the lock keeps every
// operation atomic without per-user queues.
type Store struct {
	mu       sync.RWMutex
	carts    map[int64]map[int]int
	bookings map[int64][]Booking
	stats    map[int64]*UserStats
}

// New returns an empty store.
func New() *Store {
	return &Store{
		carts:    make(map[int64]map[int]int),
		bookings: make(map[int64][]Booking),
		stats:    make(map[int64]*UserStats),
	}
}

// AddToCart increments the quantity of a product in the user's cart.
func (s *Store) AddToCart(userID int64, productID, qty int) {
	if qty <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[userID]
	if !ok {
		cart = make(map[int]int)
		s.carts[userID] = cart
	}
	cart[productID] += qty
}

// CartItems returns a copy of the user's cart.
func (s *Store) CartItems(userID int64) map[int]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]int, len(s.carts[userID]))
	for id, qty := range s.carts[userID] {
		out[id] = qty
	}
	return out
}

// CartTotal sums price times quantity over the user's cart. Unknown product
// ids are skipped.
func (s *Store) CartTotal(userID int64, cat *catalog.Catalog) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cartTotalLocked(s.carts[userID], cat)
}

func cartTotalLocked(cart map[int]int, cat *catalog.Catalog) int {
	total := 0
	for id, qty := range cart {
		if p, ok := cat.Products[id]; ok {
			total += p.Price * qty
		}
	}
	return total
}

// Checkout computes the cart total and clears the cart in one critical
// section. An empty cart yields zero and mutates nothing.
func (s *Store) Checkout(userID int64, cat *catalog.Catalog) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[userID]
	if len(cart) == 0 {
		return 0
	}
	total := cartTotalLocked(cart, cat)
	delete(s.carts, userID)
	return total
}

// ClearCart drops the user's cart.
func (s *Store) ClearCart(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// AddBooking appends a booking record for the user.
func (s *Store) AddBooking(userID int64, b Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[userID] = append(s.bookings[userID], b)
}

// Bookings returns a copy of the user's booking records.
func (s *Store) Bookings(userID int64) []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Booking, len(s.bookings[userID]))
	copy(out, s.bookings[userID])
	return out
}

// RecordDispatch bumps the dispatch counter and last-activity timestamp.
// The routers call it for every update that reaches a handler.
func (s *Store) RecordDispatch(userID int64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.statsLocked(userID)
	st.Dispatches++
	st.LastActive = at
}

// RecordSession bumps the session counter; the /start handler calls it.
func (s *Store) RecordSession(userID int64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.statsLocked(userID)
	st.Sessions++
	st.LastActive = at
}

func (s *Store) statsLocked(userID int64) *UserStats {
	st, ok := s.stats[userID]
	if !ok {
		st = &UserStats{}
		s.stats[userID] = st
	}
	return st
}

// Stats returns a copy of the user's usage stats.
func (s *Store) Stats(userID int64) UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.stats[userID]; ok {
		return *st
	}
	return UserStats{}
}

// Aggregate builds the admin snapshot. Users active within activeWindow of
// now count as active.
func (s *Store) Aggregate(now time.Time, activeWindow time.Duration) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{TotalUsers: len(s.stats)}
	cutoff := now.Add(-activeWindow)
	for _, st := range s.stats {
		snap.Dispatches += st.Dispatches
		snap.Sessions += st.Sessions
		if !st.LastActive.IsZero() && st.LastActive.After(cutoff) {
			snap.ActiveUsers++
		}
	}
	for _, cart := range s.carts {
		if len(cart) > 0 {
			snap.ActiveCarts++
		}
	}
	for _, list := range s.bookings {
		snap.TotalBookings += len(list)
	}
	return snap
}
