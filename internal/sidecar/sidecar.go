// Package sidecar defines the narrow contracts the RedDog services require
// from their infrastructure sidecar: key-value state with optimistic
// concurrency, at-least-once pub/sub, service invocation, secrets, and
// output bindings. Engines depend only on these interfaces; the backends
// live in subpackages.
package sidecar

import "context"

// StateStore is a key-value store with per-key optimistic concurrency.
// Consistency is eventual and conflict policy is first-writer-wins.
type StateStore interface {
	// Get returns the stored value and its concurrency token. A missing key
	// returns (nil, "", nil).
	Get(ctx context.Context, key string) (value []byte, etag string, err error)

	// TrySet writes value only if the key's current token still matches
	// etag. An empty etag asserts the key does not exist yet. It returns
	// false (with a nil error) when an intervening write invalidated the
	// token; the caller must re-read and retry.
	TrySet(ctx context.Context, key string, value []byte, etag string) (bool, error)
}

// Publisher delivers events to a topic with at-least-once semantics.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// Handler consumes one delivery. Returning an error requeues the message,
// so handlers must tolerate duplicates.
type Handler func(ctx context.Context, body []byte) error

// Subscriber attaches a handler to a topic for this consumer app.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
}

// Invoker reaches another service's HTTP surface by app id.
type Invoker interface {
	Get(ctx context.Context, appID, method string, out any) error
	Post(ctx context.Context, appID, method string, body any) error
	Delete(ctx context.Context, appID, method string) error
}

// Secrets resolves named secrets from the local secret store.
type Secrets interface {
	Get(name string) (string, error)
}

// Binding writes a payload through a named output binding.
type Binding interface {
	Create(ctx context.Context, payload any, metadata map[string]string) error
}
