// Package signal provides a small observable value cell for UI state that
// several components share, such as whether a tab is being dragged.
//
// A Signal is created by its owner and handed to collaborators by
// reference. There is no package-level instance.
package signal

import "sync"

// subscriberBuffer is the channel capacity per subscriber. Sends never
// block; a subscriber that falls behind misses intermediate values and can
// always read the latest one with Get.
const subscriberBuffer = 8

// Signal holds a value of type T and publishes changes to subscribers.
// It is safe for concurrent use.
type Signal[T comparable] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]chan T
}

// New returns a signal holding initial.
func New[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]chan T)}
}

// NewDragState returns the shared "tab drag in progress" flag, initially
// false.
func NewDragState() *Signal[bool] {
	return New(false)
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v and notifies subscribers. Setting the current value again
// is a no-op. Returns true if the value changed.
func (s *Signal[T]) Set(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(v)
}

// Update applies fn to the current value and stores the result atomically.
func (s *Signal[T]) Update(fn func(T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(fn(s.value))
}

func (s *Signal[T]) setLocked(v T) bool {
	if s.value == v {
		return false
	}
	s.value = v
	for _, ch := range s.subs {
		select {
		case ch <- v:
		default:
			// Subscriber is behind; it can catch up via Get.
		}
	}
	return true
}

// Subscribe returns a channel receiving every subsequent change and a
// cancel func that unsubscribes and closes the channel. Cancel is safe to
// call more than once.
func (s *Signal[T]) Subscribe() (<-chan T, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	ch := make(chan T, subscriberBuffer)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers returns the number of active subscriptions.
func (s *Signal[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
