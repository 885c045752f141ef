package model

type Provider[T any] func() (T, error)

type Transformer[M any, N any] func(M) (N, error)

type Folder[N any, M any] func(M, N) (M, error)

type Filter[M any] func(M) bool

type Operator[M any] func(M) error

func FixedProvider[T any](t T) Provider[T] {
	return func() (T, error) {
		return t, nil
	}
}

func ErrorProvider[T any](err error) Provider[T] {
	return func() (T, error) {
		var r T
		return r, err
	}
}

func Map[M any, N any](f Transformer[M, N]) func(Provider[M]) Provider[N] {
	return func(p Provider[M]) Provider[N] {
		return func() (N, error) {
			m, err := p()
			if err != nil {
				var n N
				return n, err
			}
			return f(m)
		}
	}
}

func SliceMap[M any, N any](f Transformer[M, N]) func(Provider[[]M]) Provider[[]N] {
	return func(p Provider[[]M]) Provider[[]N] {
		return func() ([]N, error) {
			ms, err := p()
			if err != nil {
				return nil, err
			}
			ns := make([]N, 0, len(ms))
			for _, m := range ms {
				n, err := f(m)
				if err != nil {
					return nil, err
				}
				ns = append(ns, n)
			}
			return ns, nil
		}
	}
}

func FilteredProvider[M any](p Provider[[]M], filters ...Filter[M]) Provider[[]M] {
	return func() ([]M, error) {
		ms, err := p()
		if err != nil {
			return nil, err
		}
		var rs []M
		for _, m := range ms {
			ok := true
			for _, f := range filters {
				if !f(m) {
					ok = false
					break
				}
			}
			if ok {
				rs = append(rs, m)
			}
		}
		return rs, nil
	}
}

func Fold[N any, M any](p Provider[[]N], supplier Provider[M], folder Folder[N, M]) Provider[M] {
	return func() (M, error) {
		ns, err := p()
		if err != nil {
			var m M
			return m, err
		}
		m, err := supplier()
		if err != nil {
			return m, err
		}
		for _, n := range ns {
			m, err = folder(m, n)
			if err != nil {
				return m, err
			}
		}
		return m, nil
	}
}

func ForEachSlice[M any](p Provider[[]M], o Operator[M]) error {
	ms, err := p()
	if err != nil {
		return err
	}
	for _, m := range ms {
		if err = o(m); err != nil {
			return err
		}
	}
	return nil
}

//goland:noinspection GoUnusedExportedFunction
func CollapseProvider[A, T any](f func(A) Provider[T]) func(A) (T, error) {
	return func(a A) (T, error) {
		return f(a)()
	}
}
