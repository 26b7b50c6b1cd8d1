// Package mocks provides an in-memory otel.Otel that records spans instead of exporting them.
package mocks

import (
	"context"
	"sync"
	"todomac/infras/otel"
)

type Span struct {
	Scope  string
	Name   string
	Errors []error
	Attrs  map[string]any
	Ended  bool
}

type Otel struct {
	mu    sync.Mutex
	spans []*Span
}

func NewOtel() *Otel {
	return &Otel{}
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	span := &Span{Scope: scopeName, Name: spanName, Attrs: map[string]any{}}

	o.mu.Lock()
	o.spans = append(o.spans, span)
	o.mu.Unlock()

	return ctx, &scope{otel: o, span: span}
}

// Span returns the first recorded span with the given name.
func (o *Otel) Span(name string) (Span, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, span := range o.spans {
		if span.Name == name {
			return *span, true
		}
	}

	return Span{}, false
}

func (o *Otel) SpanNames() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	names := make([]string, 0, len(o.spans))
	for _, span := range o.spans {
		names = append(names, span.Name)
	}

	return names
}

type scope struct {
	otel *Otel
	span *Span
}

func (s *scope) End() {
	s.otel.mu.Lock()
	defer s.otel.mu.Unlock()

	s.span.Ended = true
}

func (s *scope) TraceError(err error) {
	s.otel.mu.Lock()
	defer s.otel.mu.Unlock()

	s.span.Errors = append(s.span.Errors, err)
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scope) AddEvent(_ string) {}

func (s *scope) SetAttribute(key string, value any) {
	s.otel.mu.Lock()
	defer s.otel.mu.Unlock()

	s.span.Attrs[key] = value
}

func (s *scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
