package signals

import (
	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/unique-id-go/uniqueid/disposable"
)

type CompositeSignalImp[E any] struct {
	delegates []Signal[E]
}

func NewCompositeSignal[E any](delegates ...Signal[E]) *CompositeSignalImp[E] {
	return &CompositeSignalImp[E]{delegates: delegates}
}

// Attach registers observer on every delegate under one id, minted here when none is
// given, so that Detach and the returned Disposable reach all of them.
func (s *CompositeSignalImp[E]) Attach(observer Observer[E], observerID ...any) disposable.Disposable {
	id := resolveID(observerID)
	disposables := make([]disposable.Disposable, 0, len(s.delegates))
	for _, delegate := range s.delegates {
		disposables = append(disposables, delegate.Attach(observer, id))
	}
	return disposable.NewCompositeDisposable(disposables...)
}

func (s *CompositeSignalImp[E]) Detach(observerID any) {
	for _, delegate := range s.delegates {
		delegate.Detach(observerID)
	}
}

func (s *CompositeSignalImp[E]) Notify(event E) error {
	var result *multierror.Error
	for _, delegate := range s.delegates {
		if err := delegate.Notify(event); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
