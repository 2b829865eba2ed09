package mapper

// ConverterFunc converts a source value into the value assigned to a destination member.
// The converters package provides ready-made ones.
type ConverterFunc func(src any) (any, error)

// ComposeConverters chains multiple ConverterFunc instances left-to-right.
// If any converter returns an error it aborts.
// Nil output propagates immediately.
func ComposeConverters(fns ...ConverterFunc) ConverterFunc {
	return func(src any) (any, error) {
		cur := src
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			out, err := fn(cur)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, nil
			}
			cur = out
		}
		return cur, nil
	}
}

// MapString returns a ConverterFunc applying f when src is a string; otherwise returns src unchanged.
func MapString(f func(string) string) ConverterFunc {
	return func(src any) (any, error) {
		if s, ok := src.(string); ok {
			return f(s), nil
		}
		return src, nil
	}
}
