package signals

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/unique-id-go/uniqueid/identity"
)

type sampleEvent struct {
	payload int
}

func TestSignal_AttachAndNotify(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var called sampleEvent
	s.Attach(func(e sampleEvent) error { called = e; return nil }, "obs")
	err := s.Notify(sampleEvent{1})
	assert.NoError(t, err)
	assert.Equal(t, sampleEvent{1}, called)
}

func TestSignal_NotifyPreservesOrder(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var order []int
	s.Attach(func(e sampleEvent) error { order = append(order, 1); return nil }, "obs1")
	s.Attach(func(e sampleEvent) error { order = append(order, 2); return nil }, "obs2")
	s.Notify(sampleEvent{1})
	assert.Equal(t, []int{1, 2}, order)
}

func TestSignal_Detach(t *testing.T) {
	s := NewSignal[sampleEvent]()
	called := false
	s.Attach(func(e sampleEvent) error { called = true; return nil }, "obs")
	s.Detach("obs")
	s.Notify(sampleEvent{1})
	assert.False(t, called)
}

func TestSignal_DetachNonexistentIsSilent(t *testing.T) {
	s := NewSignal[sampleEvent]()
	s.Detach("nonexistent") // should not panic
}

func TestSignal_AttachDuplicateIDKeepsFirst(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var which int
	s.Attach(func(e sampleEvent) error { which = 1; return nil }, "same")
	s.Attach(func(e sampleEvent) error { which = 2; return nil }, "same")
	s.Notify(sampleEvent{1})
	assert.Equal(t, 1, which)
}

func TestSignal_RejectedAttachDisposableIsNoop(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var which int
	s.Attach(func(e sampleEvent) error { which = 1; return nil }, "same")
	d := s.Attach(func(e sampleEvent) error { which = 2; return nil }, "same")
	d.Dispose()
	s.Notify(sampleEvent{1})
	assert.Equal(t, 1, which)
}

func TestSignal_StaleDisposableKeepsLaterAttachment(t *testing.T) {
	s := NewSignal[sampleEvent]()
	callCount := 0
	observer := Observer[sampleEvent](func(e sampleEvent) error { callCount++; return nil })
	d1 := s.Attach(observer, "obs")
	s.Detach("obs")
	s.Attach(observer, "obs")
	d1.Dispose()
	s.Notify(sampleEvent{1})
	assert.Equal(t, 1, callCount)
}

func TestSignal_AttachUncomparableIDPanics(t *testing.T) {
	s := NewSignal[sampleEvent]()
	observer := Observer[sampleEvent](func(e sampleEvent) error { return nil })
	assert.PanicsWithValue(t, "signals: observer id of type []int is not comparable", func() {
		s.Attach(observer, []int{1})
	})
	assert.NotPanics(t, func() {
		s.Detach(map[string]int{})
	})
}

func TestSignal_AttachWithUniqueIdAsID(t *testing.T) {
	s := NewSignal[sampleEvent]()
	id := identity.New()
	callCount := 0
	observer := Observer[sampleEvent](func(e sampleEvent) error { callCount++; return nil })
	s.Attach(observer, id)
	s.Attach(observer, id)
	s.Notify(sampleEvent{1})
	assert.Equal(t, 1, callCount)

	s.Detach(id.Clone())
	s.Notify(sampleEvent{1})
	assert.Equal(t, 2, callCount)

	s.Detach(id)
	s.Notify(sampleEvent{1})
	assert.Equal(t, 2, callCount)
}

func TestSignal_AttachWithoutIDIsDistinctEachTime(t *testing.T) {
	s := NewSignal[sampleEvent]()
	callCount := 0
	observer := Observer[sampleEvent](func(e sampleEvent) error { callCount++; return nil })
	s.Attach(observer)
	s.Attach(observer)
	s.Notify(sampleEvent{1})
	assert.Equal(t, 2, callCount)
}

func TestSignal_ClosuresFromSameLiteralAreSeparate(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []int
	for i := 1; i <= 3; i++ {
		s.Attach(func(e sampleEvent) error { calls = append(calls, i); return nil })
	}
	s.Notify(sampleEvent{1})
	assert.Equal(t, []int{1, 2, 3}, calls)
}

func TestSignal_DisposableDetaches(t *testing.T) {
	s := NewSignal[sampleEvent]()
	called := false
	d := s.Attach(func(e sampleEvent) error { called = true; return nil }, "obs")
	d.Dispose()
	s.Notify(sampleEvent{1})
	assert.False(t, called)
}

func TestSignal_DisposableDetachesOnlyItsAttachment(t *testing.T) {
	s := NewSignal[sampleEvent]()
	callCount := 0
	observer := Observer[sampleEvent](func(e sampleEvent) error { callCount++; return nil })
	d1 := s.Attach(observer)
	s.Attach(observer)
	d1.Dispose()
	s.Notify(sampleEvent{1})
	assert.Equal(t, 1, callCount)
}

func TestSignal_NotifyNoObservers(t *testing.T) {
	s := NewSignal[sampleEvent]()
	assert.NoError(t, s.Notify(sampleEvent{1}))
}

func TestSignal_NotifyCollectsErrors(t *testing.T) {
	s := NewSignal[sampleEvent]()
	err1 := errors.New("first")
	err2 := errors.New("second")
	reached := false
	s.Attach(func(e sampleEvent) error { return err1 })
	s.Attach(func(e sampleEvent) error { return err2 })
	s.Attach(func(e sampleEvent) error { reached = true; return nil })

	err := s.Notify(sampleEvent{1})
	require.Error(t, err)
	assert.True(t, reached)
	assert.ErrorIs(t, err, err1)
	assert.ErrorIs(t, err, err2)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
}

func TestSignal_DetachDuringNotify(t *testing.T) {
	s := NewSignal[sampleEvent]()
	var calls []int
	s.Attach(func(e sampleEvent) error {
		calls = append(calls, 1)
		s.Detach("second")
		return nil
	}, "first")
	s.Attach(func(e sampleEvent) error { calls = append(calls, 2); return nil }, "second")

	s.Notify(sampleEvent{1})
	assert.Equal(t, []int{1, 2}, calls)

	s.Notify(sampleEvent{1})
	assert.Equal(t, []int{1, 2, 1}, calls)
}
