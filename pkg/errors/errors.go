// Package errors provides structured error reporting for slimy widgets.
//
// Widget operations themselves never fail: out-of-range input is clamped and
// rejected edits are dropped silently. The types here cover the outer
// surfaces only (theme loading, host setup, application callbacks).
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid theme or widget configuration.
	KindConfig
	// KindParsing indicates a value in a theme file could not be parsed.
	KindParsing
	// KindHost indicates a failure in a host adapter.
	KindHost
	// KindRender indicates a drawing error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindCallback indicates an application callback failed.
	KindCallback
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindHost:
		return "host"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// WidgetError represents a structured error raised around a widget.
type WidgetError struct {
	// Op is the operation that failed (e.g., "theme.Parse").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the widget ID the error relates to, if any.
	Widget int64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WidgetError) Error() string {
	if e.Widget != 0 {
		return fmt.Sprintf("%s [%s] widget=%d: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.OnSubmitted").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a theme value that could not be decoded.
type ParseError struct {
	// Field is the dotted path of the offending field.
	Field string
	// DataType is the expected type name.
	DataType string
	// Got is the raw value received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s as %s: got %v", e.Field, e.DataType, e.Got)
}

// ErrorHandler receives errors reported by widgets and hosts.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WidgetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
