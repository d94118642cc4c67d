package rbez

type option[T any] struct {
	isSet bool
	value T
}

func some[T any](v T) option[T] {
	return option[T]{isSet: true, value: v}
}

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}
