package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// EventType identifies a domain lifecycle event
type EventType string

const (
	DomainRegistered     EventType = "domain.registered"
	DomainVerified       EventType = "domain.verified"
	DomainRemoved        EventType = "domain.removed"
	DomainDefaultChanged EventType = "domain.default_changed"
	DomainPrimaryChanged EventType = "domain.primary_changed"
)

// Event is the message published for each domain lifecycle change. Messages
// are keyed by tenant so one tenant's events stay ordered within a partition.
type Event struct {
	Type      EventType `json:"type"`
	TenantID  string    `json:"tenantId"`
	Domain    string    `json:"domain"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher fans domain lifecycle events out to Kafka. Publishing is
// fire-and-forget: events are queued in memory and written by a background
// worker so request handlers never block on the broker. With no brokers
// configured the publisher is a no-op.
type Publisher struct {
	writer  *kafka.Writer
	logger  *logrus.Entry
	queue   chan Event
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	enabled bool
}

// Config holds the configuration for the event publisher
type Config struct {
	Brokers []string
	Topic   string
	Logger  *logrus.Entry
}

const (
	queueSize   = 256
	workerCount = 2
)

// NewPublisher creates an event publisher. An empty broker list yields a
// disabled publisher whose Publish and Close are no-ops.
func NewPublisher(cfg *Config) *Publisher {
	p := &Publisher{
		logger: cfg.Logger.WithField("component", "event-publisher"),
	}
	if len(cfg.Brokers) == 0 {
		p.logger.Info("No Kafka brokers configured, event publishing disabled")
		return p
	}

	p.enabled = true
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 100 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	p.queue = make(chan Event, queueSize)

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.run()
	}
	return p
}

// Publish queues an event for delivery. A full queue drops the event with a
// warning rather than stalling the caller.
//
// The read lock is held across the send so Close cannot close the queue
// while a send is in flight.
func (p *Publisher) Publish(eventType EventType, tenantID, domain string) {
	if !p.enabled {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}

	evt := Event{
		Type:      eventType,
		TenantID:  tenantID,
		Domain:    domain,
		Timestamp: time.Now(),
	}
	select {
	case p.queue <- evt:
	default:
		p.logger.WithFields(logrus.Fields{
			"type":   eventType,
			"domain": domain,
		}).Warn("Event queue full, dropping event")
	}
}

func (p *Publisher) run() {
	defer p.wg.Done()
	for evt := range p.queue {
		p.write(evt)
	}
}

func (p *Publisher) write(evt Event) {
	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.Errorf("Failed to marshal event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.TenantID),
		Value: payload,
	})
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"type":   evt.Type,
			"domain": evt.Domain,
		}).Errorf("Failed to publish event: %v", err)
	}
}

// Close drains the queue and shuts down the writer. The write lock flips
// the closed flag before the queue is closed, so no publisher can be mid-send
// when the close happens; late publishes become no-ops.
func (p *Publisher) Close() error {
	if !p.enabled {
		return nil
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
	return p.writer.Close()
}
