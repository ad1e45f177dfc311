package xcmd

import (
	"context"
	"sync"
)

// Group runs functions concurrently and cancels the shared context on the
// first error. An optional limit bounds how many functions run at once.
type Group struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	wg      sync.WaitGroup
	sem     chan struct{}
	errOnce sync.Once
	err     error
}

// ErrGroup returns a new Group and an associated Context derived from ctx.
// The derived Context is canceled when the first goroutine returns an error,
// or when Wait returns, whichever happens first.
func ErrGroup(ctx context.Context) (*Group, context.Context) {
	ctx, cancel := context.WithCancelCause(ctx)
	return &Group{ctx: ctx, cancel: cancel}, ctx
}

// SetLimit bounds the number of active goroutines. n <= 0 removes the limit.
// It must not be called while goroutines are active.
func (g *Group) SetLimit(n int) {
	if n <= 0 {
		g.sem = nil
		return
	}
	g.sem = make(chan struct{}, n)
}

// Go calls f in a new goroutine, blocking while the limit is reached.
// Functions queued after the context is canceled are not started.
func (g *Group) Go(f func(ctx context.Context) error) {
	if g.sem != nil {
		if g.ctx.Err() != nil {
			return
		}

		select {
		case g.sem <- struct{}{}:
		case <-g.ctx.Done():
			return
		}
	}

	g.wg.Add(1)

	go func() {
		defer g.wg.Done()
		defer g.release()

		if err := f(g.ctx); err != nil {
			g.errOnce.Do(func() {
				g.err = err
				g.cancel(err)
			})
		}
	}()
}

func (g *Group) release() {
	if g.sem != nil {
		<-g.sem
	}
}

// Wait blocks until all function calls from the Go method have returned,
// then returns the first non-nil error (if any) from them.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.cancel(nil)
	return g.err
}
