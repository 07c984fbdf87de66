package disposable

import "sync"

type Disposable interface {
	Dispose()
}

type disposableImp struct {
	once     sync.Once
	callback func()
}

// NewDisposable wraps callback so that it runs on the first Dispose only.
func NewDisposable(callback func()) Disposable {
	return &disposableImp{callback: callback}
}

func (d *disposableImp) Dispose() {
	d.once.Do(d.callback)
}

type CompositeDisposable struct {
	delegates []Disposable
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposable {
	return &CompositeDisposable{delegates: delegates}
}

func (d *CompositeDisposable) Dispose() {
	for _, delegate := range d.delegates {
		delegate.Dispose()
	}
}
