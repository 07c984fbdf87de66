package signals

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/unique-id-go/uniqueid/disposable"
	"github.com/krew-solutions/unique-id-go/uniqueid/identity"
)

type entry[E any] struct {
	key      identity.UniqueId
	id       any
	observer Observer[E]
}

type SignalImp[E any] struct {
	observers []entry[E]
}

func NewSignal[E any]() *SignalImp[E] {
	return &SignalImp[E]{}
}

// Attach registers observer under observerID. When the id is already taken the call
// is a no-op and so is the returned Disposable. Explicit ids must be comparable;
// Attach panics otherwise.
func (s *SignalImp[E]) Attach(observer Observer[E], observerID ...any) disposable.Disposable {
	id := resolveID(observerID)
	if s.has(id) {
		return disposable.NewDisposable(func() {})
	}
	key := identity.New()
	s.observers = append(s.observers, entry[E]{key: key, id: id, observer: observer})
	return disposable.NewDisposable(func() {
		s.remove(func(e entry[E]) bool { return e.key == key })
	})
}

func (s *SignalImp[E]) Detach(observerID any) {
	if !isComparable(observerID) {
		return
	}
	s.remove(func(e entry[E]) bool { return e.id == observerID })
}

func (s *SignalImp[E]) remove(match func(entry[E]) bool) {
	if i := slices.IndexFunc(s.observers, match); i >= 0 {
		s.observers = slices.Delete(s.observers, i, i+1)
	}
}

// Notify calls every observer attached before the call, in attach order, and
// returns the combined errors.
func (s *SignalImp[E]) Notify(event E) error {
	var result *multierror.Error
	for _, e := range slices.Clone(s.observers) {
		if err := e.observer(event); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func (s *SignalImp[E]) has(id any) bool {
	for _, e := range s.observers {
		if e.id == id {
			return true
		}
	}
	return false
}

func resolveID(observerID []any) any {
	if len(observerID) == 0 {
		return identity.New()
	}
	id := observerID[0]
	if !isComparable(id) {
		panic(fmt.Sprintf("signals: observer id of type %T is not comparable", id))
	}
	return id
}

// isComparable reports whether id can be used with ==. A comparable struct holding
// an uncomparable value in an interface field still panics on ==.
func isComparable(id any) bool {
	t := reflect.TypeOf(id)
	return t == nil || t.Comparable()
}
