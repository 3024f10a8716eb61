package inix

import "github.com/KimNorgaard/go-inix/internal/parser"

type options struct {
	logger          Logger
	mergeDuplicates bool
}

// Option configures parsing.
type Option func(*options)

// WithLogger returns an Option that sends parser diagnostics to l.
// A nil logger leaves logging disabled.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// MergeDuplicateHeaders returns an Option that lets a repeated header name
// continue the earlier header without recording a DuplicateHeader error.
// Properties after the repeated header are added to the earlier one.
func MergeDuplicateHeaders() Option {
	return func(o *options) {
		o.mergeDuplicates = true
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: NopLogger{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) parserOptions() []parser.Option {
	popts := []parser.Option{parser.WithLogger(o.logger)}
	if o.mergeDuplicates {
		popts = append(popts, parser.MergeDuplicateHeaders())
	}
	return popts
}
