//go:build unit

package fake

import (
	"context"
	"encoding/json"
	"sync"

	"reddog/internal/pkg/errs"
)

// Invoker routes sidecar invocations to registered functions, letting tests
// wire a worker directly to an engine without HTTP.
type Invoker struct {
	mu sync.Mutex

	GetFunc    func(ctx context.Context, appID, method string) (any, error)
	PostFunc   func(ctx context.Context, appID, method string, body []byte) error
	DeleteFunc func(ctx context.Context, appID, method string) error

	deletes []string
	gets    []string
}

func NewInvoker() *Invoker {
	return &Invoker{}
}

func (i *Invoker) Get(ctx context.Context, appID, method string, out any) error {
	i.mu.Lock()
	i.gets = append(i.gets, method)
	i.mu.Unlock()

	if i.GetFunc == nil {
		return errs.New("no GetFunc registered")
	}
	result, err := i.GetFunc(ctx, appID, method)
	if err != nil {
		return err
	}

	// round-trip through JSON like the real invoker
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (i *Invoker) Post(ctx context.Context, appID, method string, body any) error {
	if i.PostFunc == nil {
		return errs.New("no PostFunc registered")
	}
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return i.PostFunc(ctx, appID, method, data)
}

func (i *Invoker) Delete(ctx context.Context, appID, method string) error {
	i.mu.Lock()
	i.deletes = append(i.deletes, method)
	i.mu.Unlock()

	if i.DeleteFunc == nil {
		return errs.New("no DeleteFunc registered")
	}
	return i.DeleteFunc(ctx, appID, method)
}

func (i *Invoker) DeleteCalls() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]string(nil), i.deletes...)
}

func (i *Invoker) GetCalls() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]string(nil), i.gets...)
}
