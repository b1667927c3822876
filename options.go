package monkey

import "fmt"

// Option configures Parse and Format.
type Option func(*options) error

type options struct {
	maxErrors int
	indent    *int
}

func newOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxErrors returns an Option that caps the number of diagnostics Parse
// records. Parsing still runs to the end of the input. Zero means no limit.
func MaxErrors(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("monkey: max errors must not be negative")
		}
		o.maxErrors = n
		return nil
	}
}

// Indent returns an Option that sets the number of spaces per block level
// used by Format. Zero writes every block on a single line.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("monkey: indent must not be negative")
		}
		o.indent = &n
		return nil
	}
}
