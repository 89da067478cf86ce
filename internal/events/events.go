// Package events carries the fire-and-forget notification hook the engines
// emit into. Delivery is best effort; a lost event never affects the
// transaction that produced it.
package events

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/spatocode/capperhub/pkg/clients"
	"go.uber.org/zap"
)

const (
	EventWagerCreated          = "wager.created"
	EventWagerMatched          = "wager.matched"
	EventWagerSettled          = "wager.settled"
	EventWagerVoided           = "wager.voided"
	EventSubscriptionCreated   = "subscription.created"
	EventSubscriptionCancelled = "subscription.cancelled"
	EventSubscriptionExpired   = "subscription.expired"
)

type Event struct {
	Type    string `json:"event_type"`
	Payload any    `json:"payload"`
}

// Emitter is injected into each engine at construction time.
type Emitter interface {
	Emit(event Event)
}

// NopEmitter swallows everything; used in tests.
type NopEmitter struct{}

func (NopEmitter) Emit(Event) {}

// AsyncEmitter fans events out to worker goroutines that post them to the
// configured webhook sink. Emit never blocks: when the buffer is full the
// event is dropped with a warning.
type AsyncEmitter struct {
	url    string
	client clients.HTTPClientI
	ch     chan Event
	wg     sync.WaitGroup
}

func NewAsyncEmitter(url string, client clients.HTTPClientI, workers, buffer int) *AsyncEmitter {
	e := &AsyncEmitter{
		url:    url,
		client: client,
		ch:     make(chan Event, buffer),
	}
	for i := 0; i < workers; i++ {
		e.wg.Add(1)
		go e.worker()
	}
	return e
}

func (e *AsyncEmitter) Emit(event Event) {
	select {
	case e.ch <- event:
	default:
		zap.L().Warn("event buffer full, dropping event", zap.String("type", event.Type))
	}
}

func (e *AsyncEmitter) worker() {
	defer e.wg.Done()
	for event := range e.ch {
		e.deliver(event)
	}
}

func (e *AsyncEmitter) deliver(event Event) {
	if e.url == "" {
		zap.L().Debug("no notification sink configured, skipping event", zap.String("type", event.Type))
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't marshal event", zap.String("type", event.Type), zap.Error(err))
		return
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	statusCode, _, err := e.client.Post(e.url, headers, bytes.NewReader(body))
	if err != nil {
		zap.L().Warn("event delivery failed", zap.String("type", event.Type), zap.Error(err))
		return
	}
	if statusCode >= http.StatusMultipleChoices {
		zap.L().Warn("event sink rejected event", zap.String("type", event.Type), zap.Int("status", statusCode))
	}
}

// Close drains the buffer and stops the workers.
func (e *AsyncEmitter) Close() {
	close(e.ch)
	e.wg.Wait()
}
