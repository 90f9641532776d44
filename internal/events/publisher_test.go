package events

import (
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Entry {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return logrus.NewEntry(base)
}

func TestPublisherDisabled(t *testing.T) {
	logger := logrus.NewEntry(logrus.New())
	p := NewPublisher(&Config{Brokers: nil, Topic: "tenant-domain-events", Logger: logger})

	if p.enabled {
		t.Fatal("publisher with no brokers must be disabled")
	}

	// Both must be safe no-ops.
	p.Publish(DomainRegistered, "tenant-1", "shop.example.com")
	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	p.Publish(DomainRemoved, "tenant-1", "shop.example.com")
}

func TestPublishDuringClose(t *testing.T) {
	// Unroutable broker: workers drain the queue with failing writes, which
	// is all this test needs. The point is that publishers hammering the
	// queue while Close runs must never hit a closed channel.
	p := NewPublisher(&Config{
		Brokers: []string{"127.0.0.1:1"},
		Topic:   "tenant-domain-events",
		Logger:  discardLogger(),
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Publish panicked: %v", r)
				}
			}()
			for j := 0; j < 200; j++ {
				p.Publish(DomainRegistered, "tenant-1", "shop.example.com")
			}
		}()
	}

	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	wg.Wait()

	// Publishing after close is a no-op, and a second close is too.
	p.Publish(DomainRemoved, "tenant-1", "shop.example.com")
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestEventTypes(t *testing.T) {
	want := map[EventType]string{
		DomainRegistered:     "domain.registered",
		DomainVerified:       "domain.verified",
		DomainRemoved:        "domain.removed",
		DomainDefaultChanged: "domain.default_changed",
		DomainPrimaryChanged: "domain.primary_changed",
	}
	for typ, s := range want {
		if string(typ) != s {
			t.Errorf("event type %v = %q, want %q", typ, string(typ), s)
		}
	}
}
