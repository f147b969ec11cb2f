package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishReachesSubscribers(t *testing.T) {
	t.Parallel()
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventEnrollmentCreated, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	d.Subscribe(EventCourseCreated, func(_ context.Context, e Event) error {
		t.Fatalf("unexpected delivery for %s", e.Type)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventEnrollmentCreated})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "e1", got[0].ID)
}

func TestDispatcher_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	t.Parallel()
	d := NewInMemoryDispatcher()

	var second bool
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		second = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventUserRegistered}))
	require.True(t, second)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	t.Parallel()
	d := NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventStudentCreated}))
}
