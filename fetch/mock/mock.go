package mock

import (
	"context"

	"github.com/sig-0/penrates/fetch"
)

type (
	AcquireDelegate     func(context.Context) (fetch.Session, error)
	NavigateDelegate    func(context.Context, string) error
	WaitVisibleDelegate func(context.Context, string) error
	HTMLDelegate        func(context.Context) (string, error)
	CloseDelegate       func() error
)

type Engine struct {
	AcquireFn AcquireDelegate
}

func (m *Engine) Acquire(ctx context.Context) (fetch.Session, error) {
	if m.AcquireFn != nil {
		return m.AcquireFn(ctx)
	}

	return &Session{}, nil
}

type Session struct {
	NavigateFn    NavigateDelegate
	WaitVisibleFn WaitVisibleDelegate
	HTMLFn        HTMLDelegate
	CloseFn       CloseDelegate
}

func (m *Session) Navigate(ctx context.Context, url string) error {
	if m.NavigateFn != nil {
		return m.NavigateFn(ctx, url)
	}

	return nil
}

func (m *Session) WaitVisible(ctx context.Context, selector string) error {
	if m.WaitVisibleFn != nil {
		return m.WaitVisibleFn(ctx, selector)
	}

	return nil
}

func (m *Session) HTML(ctx context.Context) (string, error) {
	if m.HTMLFn != nil {
		return m.HTMLFn(ctx)
	}

	return "", nil
}

func (m *Session) Close() error {
	if m.CloseFn != nil {
		return m.CloseFn()
	}

	return nil
}
