package instrument

import "github.com/katalvlaran/lazypath/search"

// fanout forwards each Report to several observers in order.
type fanout []search.Observer

func (f fanout) ObserveSearch(r search.Report) {
	for _, o := range f {
		o.ObserveSearch(r)
	}
}

// Fanout combines observers into one. Nil observers are skipped; with a
// single non-nil observer it is returned as is, with none Fanout returns nil.
func Fanout(observers ...search.Observer) search.Observer {
	var f fanout
	for _, o := range observers {
		if o != nil {
			f = append(f, o)
		}
	}
	switch len(f) {
	case 0:
		return nil
	case 1:
		return f[0]
	default:
		return f
	}
}
