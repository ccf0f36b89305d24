//go:build unit

package fake

import (
	"context"
	"encoding/json"
	"sync"

	"reddog/internal/pkg/errs"
)

type PublishedEvent struct {
	Topic string
	Body  []byte
}

// Publisher records published events and can be told to fail.
type Publisher struct {
	mu       sync.Mutex
	events   []PublishedEvent
	failNext int
}

var ErrPublishUnavailable = errs.New("event bus unavailable")

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(_ context.Context, topic string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failNext > 0 {
		p.failNext--
		return ErrPublishUnavailable
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	p.events = append(p.events, PublishedEvent{Topic: topic, Body: body})
	return nil
}

func (p *Publisher) FailNextPublishes(n int) {
	p.mu.Lock()
	p.failNext = n
	p.mu.Unlock()
}

func (p *Publisher) Events() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PublishedEvent(nil), p.events...)
}

// EventsOn returns the events published to one topic.
func (p *Publisher) EventsOn(topic string) []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []PublishedEvent
	for _, e := range p.events {
		if e.Topic == topic {
			out = append(out, e)
		}
	}
	return out
}

// Decode unmarshals the event body into out.
func (e PublishedEvent) Decode(out any) error {
	return json.Unmarshal(e.Body, out)
}
