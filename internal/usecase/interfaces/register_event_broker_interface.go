package interfaces

import "context"

// IRegisterEventBroker fans out register open/close signals to every running
// client so each one can drop its cached register state. Publishing is a
// best-effort side effect: a broker outage must never fail the register
// operation itself.

type IRegisterEventBroker interface {
	PublishOpened(ctx context.Context) error
	PublishClosed(ctx context.Context) error
}

// IRegisterStateCache is the local cached answer to "is the register open".
// Open/Close invalidate it before broadcasting, so the publishing process
// never serves its own stale value.

type IRegisterStateCache interface {
	Query(ctx context.Context) bool
	Invalidate()
}
