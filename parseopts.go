package graphalith

import "strconv"

// Option is an option for parsing and evaluating expressions.
type Option interface {
	option(parsectx) parsectx
}

// DefaultMaxDepth is the depth limit used when no MaxDepth option is given.
const DefaultMaxDepth = 1024

// parsectx holds the settings for building and evaluating expressions.
type parsectx struct {
	// left folds operator chains to the left instead of the right.
	left bool
	// maxdepth is the deepest nesting the builder accepts, or 0 for no limit.
	maxdepth int
	// normalize applies Normalize to the text given to New.
	normalize bool
	// auto evaluates in New.
	auto bool
}

func newctx(opts []Option) parsectx {
	p := parsectx{maxdepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.option(p)
	}
	return p
}

type (
	leftopt   struct{}
	depthopt  int
	normopt   struct{}
	autoopt   struct{}
	presetopt parsectx
)

// LeftAssociative makes chains of operators group to the left, so that
// "8 - 4 - 2" is "(8 - 4) - 2". By default, chains group to the right:
// "8 - 4 - 2" is "8 - (4 - 2)".
func LeftAssociative() Option {
	return leftopt{}
}

func (leftopt) option(p parsectx) parsectx {
	p.left = true
	return p
}

// MaxDepth limits how deeply an expression may nest, counting both delimiter
// groups and each operator in a right-grouped chain. Zero means no limit.
// Panics if n is negative.
func MaxDepth(n int) Option {
	if n < 0 {
		panic("graphalith: negative max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) option(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// AutoFormat tells New to apply Normalize to its text before anything else.
// It has no effect on Parse or Eval.
func AutoFormat() Option {
	return normopt{}
}

func (normopt) option(p parsectx) parsectx {
	p.normalize = true
	return p
}

// AutoEvaluate tells New to evaluate the expression immediately. Failure
// marks the expression invalid instead of producing an error. It has no effect
// on Parse or Eval.
func AutoEvaluate() Option {
	return autoopt{}
}

func (autoopt) option(p parsectx) parsectx {
	p.auto = true
	return p
}

// Preset combines several options into one. A preset replaces every setting
// made by options before it; options after it apply as usual.
func Preset(opts ...Option) Option {
	p := presetopt(newctx(opts))
	return &p
}

func (o *presetopt) option(parsectx) parsectx {
	return parsectx(*o)
}
