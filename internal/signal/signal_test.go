package signal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragState_InitiallyFalse(t *testing.T) {
	s := NewDragState()
	assert.False(t, s.Get())
}

func TestSignal_SetNotifiesOnChangeOnly(t *testing.T) {
	s := NewDragState()
	ch, cancel := s.Subscribe()
	defer cancel()

	assert.False(t, s.Set(false), "setting the same value should not notify")
	assert.True(t, s.Set(true))
	assert.True(t, s.Get())

	select {
	case v := <-ch:
		assert.True(t, v)
	default:
		t.Fatal("expected a notification")
	}
	select {
	case v := <-ch:
		t.Fatalf("unexpected extra notification %v", v)
	default:
	}
}

func TestSignal_SlowSubscriberDoesNotBlock(t *testing.T) {
	s := New(0)
	_, cancel := s.Subscribe()
	defer cancel()
	for i := 1; i <= subscriberBuffer*4; i++ {
		s.Set(i)
	}
	assert.Equal(t, subscriberBuffer*4, s.Get())
}

func TestSignal_CancelClosesAndUnsubscribes(t *testing.T) {
	s := NewDragState()
	ch, cancel := s.Subscribe()
	require.Equal(t, 1, s.Subscribers())
	cancel()
	cancel()
	assert.Equal(t, 0, s.Subscribers())
	_, open := <-ch
	assert.False(t, open)
	s.Set(true)
}

func TestSignal_Update(t *testing.T) {
	s := NewDragState()
	s.Update(func(v bool) bool { return !v })
	assert.True(t, s.Get())
}

func TestSignal_ConcurrentAccess(t *testing.T) {
	s := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ch, cancel := s.Subscribe()
			defer cancel()
			s.Set(n)
			_ = s.Get()
			select {
			case <-ch:
			default:
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, s.Subscribers())
}
