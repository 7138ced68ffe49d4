package core

import (
	"context"
	"errors"

	"github.com/inoxlang/rangeseq/internal/ast"
	"github.com/inoxlang/rangeseq/internal/parse/position"
	"github.com/rs/zerolog"
)

var (
	nopLogger = zerolog.Nop()

	ErrMissingHost = errors.New("a host is required to create a context")
)

// Host is implemented by the evaluator embedding the range values: it provides the conversions
// and the scalar operators the range operations are built on.
type Host interface {
	//ToInt should convert v to an integer or return a located error.
	ToInt(span position.SourcePositionRange, v Value) (int, error)

	//TypeName should return the name of the type of v in the template language.
	TypeName(v Value) string

	//ToBool should return the truthiness of v.
	ToBool(span position.SourcePositionRange, v Value) bool

	//EvalBinary should evaluate a binary operation between two elements, the elements may themselves be sequences.
	EvalBinary(ctx *Context, span position.SourcePositionRange, op ast.BinaryOperator, left, right Value) (Value, error)
}

type ContextConfig struct {
	Host Host

	//An optional logger, defaults to a no-op logger.
	Logger *zerolog.Logger

	//An optional set of log levels, internal debug logs are disabled if nil.
	LogLevels *LogLevels

	//An optional parent context whose cancellation is visible through the created context,
	//defaults to context.Background().
	ParentStdLibContext context.Context
}

// A Context is passed to all operations that may call back into the host.
// It is not safe for concurrent use.
type Context struct {
	context.Context
	host      Host
	logger    zerolog.Logger
	logLevels *LogLevels
}

func NewContext(config ContextConfig) (*Context, error) {
	if config.Host == nil {
		return nil, ErrMissingHost
	}

	parent := config.ParentStdLibContext
	if parent == nil {
		parent = context.Background()
	}

	logger := nopLogger
	if config.Logger != nil {
		logger = *config.Logger
	}

	return &Context{
		Context:   parent,
		host:      config.Host,
		logger:    logger,
		logLevels: config.LogLevels,
	}, nil
}

func (ctx *Context) Host() Host {
	return ctx.host
}

func (ctx *Context) Logger() zerolog.Logger {
	return ctx.logger
}

// NewChildLoggerForInternalSource returns a logger whose minimum level is 'info' unless the internal debug logs are enabled.
func (ctx *Context) NewChildLoggerForInternalSource(src string) zerolog.Logger {
	return childLoggerForInternalSource(ctx.logger, src, ctx.logLevels)
}
