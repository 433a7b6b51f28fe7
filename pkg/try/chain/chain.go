package chain

import (
	"context"

	"github.com/Marian1309/try-catch/pkg/try"
)

// Chain wraps a try.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result try.Result[T]
}

// FromResult creates a new chain from an existing try.Result
func FromResult[T any](ctx context.Context, result try.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// From creates a new chain from a successful value
func From[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: try.Success(value),
	}
}

// Result returns the underlying try.Result
func (c *Chain[T]) Result() try.Result[T] {
	return c.result
}

// Then chains a function that returns try.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) try.Result[U]) *Chain[U] {
	if c.result.IsFailure() {
		return &Chain[U]{
			ctx:    c.ctx,
			result: try.FailFrom[T, U](c.result),
		}
	}
	return &Chain[U]{
		ctx:    c.ctx,
		result: onSuccess(c.ctx, c.result.Result()),
	}
}

// ThenTry chains a function that returns (U, error). Returned errors and
// panics are converted to a failure via the normal attempt machinery.
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	if c.result.IsFailure() {
		return &Chain[U]{
			ctx:    c.ctx,
			result: try.FailFrom[T, U](c.result),
		}
	}

	v, err := try.Attempt(c.ctx, func(ctx context.Context) (U, error) {
		return tryOnSuccess(ctx, c.result.Result())
	})
	if err != nil {
		return &Chain[U]{ctx: c.ctx, result: try.Fail[U](err)}
	}
	return &Chain[U]{ctx: c.ctx, result: try.Success(v)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	if c.result.IsFailure() {
		return &Chain[U]{
			ctx:    c.ctx,
			result: try.FailFrom[T, U](c.result),
		}
	}
	return &Chain[U]{
		ctx:    c.ctx,
		result: try.Success(onSuccess(c.ctx, c.result.Result())),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) *Chain[T] {
	if c.result.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.result.Err())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.ctx, c.result.Result())
	}
	return c
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	if c.result.IsFailure() {
		return onFailure(c.ctx, c.result.Err())
	}
	return onSuccess(c.ctx, c.result.Result())
}
