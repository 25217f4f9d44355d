// Package ingest persists model-generated items one at a time, keeping the good ones
// and recording why the rest were dropped.
package ingest

import (
	"context"
	"errors"
)

// ErrNoValidItems is returned by callers when a mandatory batch produced no successes.
var ErrNoValidItems = errors.New("no valid items")

type Failure[T any] struct {
	Index  int
	Item   T
	Reason error
}

type Outcome[S any, T any] struct {
	Successes []S
	Failures  []Failure[T]
}

func (o Outcome[S, T]) Partial() bool { return len(o.Failures) > 0 }

func (o Outcome[S, T]) Empty() bool { return len(o.Successes) == 0 }

// Step validates and stores a single item.
type Step[T any, S any] func(ctx context.Context, index int, item T) (S, error)

// Fold applies step to every item in order. A failing item is recorded and the fold
// continues; once ctx is done the remaining items fail with the context error.
func Fold[T any, S any](ctx context.Context, items []T, step Step[T, S]) Outcome[S, T] {
	out := Outcome[S, T]{
		Successes: make([]S, 0, len(items)),
	}
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			out.Failures = append(out.Failures, Failure[T]{Index: i, Item: item, Reason: err})
			continue
		}
		s, err := step(ctx, i, item)
		if err != nil {
			out.Failures = append(out.Failures, Failure[T]{Index: i, Item: item, Reason: err})
			continue
		}
		out.Successes = append(out.Successes, s)
	}
	return out
}
