// Package notify sends fire-and-forget notifications to the restaurant's
// staff when a lead-capture form is submitted. Senders are third-party HTTP
// providers; a failed or unconfigured channel never fails the request that
// triggered it.
package notify

import (
	"context"
	"log"
	"time"
)

// Message is one outbound notification.
type Message struct {
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

// Sender delivers a message over one channel.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}

// Dispatcher fans a message out to every configured channel.
type Dispatcher struct {
	senders []Sender
}

// NewDispatcher creates a dispatcher over the given senders. Nil senders
// (unconfigured channels) are skipped.
func NewDispatcher(senders ...Sender) *Dispatcher {
	d := &Dispatcher{}
	for _, s := range senders {
		if s != nil {
			d.senders = append(d.senders, s)
		}
	}
	return d
}

// Dispatch sends msg on every channel in the background. Errors are logged
// and otherwise dropped.
func (d *Dispatcher) Dispatch(msg Message) {
	for _, s := range d.senders {
		go func(s Sender) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.Send(ctx, msg); err != nil {
				log.Printf("notification via %s failed: %v", s.Name(), err)
			} else {
				log.Printf("notification sent via %s: %s", s.Name(), msg.Subject)
			}
		}(s)
	}
}
