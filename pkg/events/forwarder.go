package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/components/forwarder"
)

// forwarderTopic is the internal queue Publish writes to in forwarder mode.
const forwarderTopic = "_forwarder_queue"

// StartForwarder runs the daemon that drains the forwarder queue into the
// target topics and returns once it is running. All API instances share the
// forwarder consumer group, so each queued message is forwarded once.
// Only valid on a bus from NewEventBusWithForwarder, and only once.
func (q *EventBus) StartForwarder(ctx context.Context) error {
	if !q.useForwarder {
		return fmt.Errorf("events: StartForwarder called on non-forwarder EventBus")
	}
	if q.fwd != nil {
		return fmt.Errorf("events: forwarder already started")
	}

	wlog := newWatermillLogger(q.log)
	queue, err := newSQLSubscriber(q.db, q.opts.forwarderGroup, wlog)
	if err != nil {
		return err
	}
	target, err := newSQLPublisher(q.db, wlog)
	if err != nil {
		_ = queue.Close()
		return err
	}
	fwd, err := forwarder.NewForwarder(queue, target, wlog, forwarder.Config{ForwarderTopic: forwarderTopic})
	if err != nil {
		_ = target.Close()
		_ = queue.Close()
		return fmt.Errorf("events: create forwarder: %w", err)
	}
	q.fwd = fwd

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.log.InfoContext(ctx, "events: forwarder started", "group", q.opts.forwarderGroup)
		if err := fwd.Run(ctx); err != nil {
			q.log.ErrorContext(ctx, "events: forwarder stopped with error", "error", err)
			return
		}
		q.log.InfoContext(ctx, "events: forwarder stopped")
	}()

	select {
	case <-fwd.Running():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: context cancelled waiting for forwarder: %w", ctx.Err())
	}
}
