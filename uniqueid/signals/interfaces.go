package signals

import (
	"github.com/krew-solutions/unique-id-go/uniqueid/disposable"
)

type Observer[E any] func(E) error

// Signal dispatches events to attached observers.
//
// An observer attached with an explicit id is registered once per id; the id must be
// comparable. Without an id, every Attach mints a fresh identity.UniqueId, so attaching
// the same function twice yields two independent attachments; use the returned
// Disposable to detach one.
type Signal[E any] interface {
	Attach(observer Observer[E], observerID ...any) disposable.Disposable
	Detach(observerID any)
	Notify(event E) error
}
