package events

import "context"

// Publisher fans a DomainEvent out to interested parties. Publish never
// fails from the caller's point of view: delivery problems are handled and
// logged by the implementation.
type Publisher interface {
	Publish(ctx context.Context, evt DomainEvent)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, evt DomainEvent)

func (f PublisherFunc) Publish(ctx context.Context, evt DomainEvent) { f(ctx, evt) }

// Multi returns a Publisher that hands each event to every non-nil publisher
// in order.
func Multi(publishers ...Publisher) Publisher {
	var ps []Publisher
	for _, p := range publishers {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return PublisherFunc(func(ctx context.Context, evt DomainEvent) {
		for _, p := range ps {
			p.Publish(ctx, evt)
		}
	})
}
