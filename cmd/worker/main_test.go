package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/logger"
	domainevents "github.com/ghuser/giftregistry/services/registry/domain/events"
)

type fakeViews struct {
	refreshed []uuid.UUID
	err       error
}

func (f *fakeViews) Refresh(_ context.Context, inventoryID uuid.UUID) error {
	f.refreshed = append(f.refreshed, inventoryID)
	return f.err
}

func eventMessage(t *testing.T, ev domainevents.DomainEvent) *message.Message {
	t.Helper()
	payload, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return message.NewMessage(uuid.NewString(), payload)
}

func TestViewWarmer_Handle(t *testing.T) {
	inv, item, claim := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name        string
		msg         func(t *testing.T) *message.Message
		refreshErr  error
		wantRefresh bool
		wantErr     bool
	}{
		{
			name:        "claim change refreshes view",
			msg:         func(t *testing.T) *message.Message { return eventMessage(t, domainevents.NewClaimEvent(domainevents.ClaimCreated, inv, item, claim)) },
			wantRefresh: true,
		},
		{
			name: "new item leaves view alone",
			msg:  func(t *testing.T) *message.Message { return eventMessage(t, domainevents.NewItemEvent(domainevents.ItemCreated, inv, item)) },
		},
		{
			name: "undecodable payload is dropped",
			msg:  func(*testing.T) *message.Message { return message.NewMessage("bad", []byte("{")) },
		},
		{
			name:        "refresh failure is retried",
			msg:         func(t *testing.T) *message.Message { return eventMessage(t, domainevents.NewItemEvent(domainevents.ItemAssigned, inv, item)) },
			refreshErr:  errors.New("redis down"),
			wantRefresh: true,
			wantErr:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views := &fakeViews{err: tt.refreshErr}
			w, err := newViewWarmer(views, logger.Discard())
			if err != nil {
				t.Fatalf("newViewWarmer: %v", err)
			}

			err = w.Handle(context.Background(), tt.msg(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got := len(views.refreshed) == 1 && views.refreshed[0] == inv; got != tt.wantRefresh {
				t.Errorf("refreshed %v, want refresh of %s: %v", views.refreshed, inv, tt.wantRefresh)
			}
		})
	}
}

type fakeBus struct {
	topic string
	errCh chan error
}

func (b *fakeBus) Subscribe(_ context.Context, topic string, _ func(context.Context, *message.Message) error) (<-chan error, error) {
	b.topic = topic
	return b.errCh, nil
}

func TestSubscribe_InventoryTopic(t *testing.T) {
	bus := &fakeBus{errCh: make(chan error)}
	defer close(bus.errCh)

	if err := subscribe(context.Background(), bus, func(context.Context, *message.Message) error { return nil }, logger.Discard()); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if bus.topic != domainevents.TopicInventoryEvents {
		t.Errorf("subscribed to %q, want %q", bus.topic, domainevents.TopicInventoryEvents)
	}
}
