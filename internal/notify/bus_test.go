package notify

import "testing"

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe(func(c string) { got = append(got, "a:"+c) })
	bus.Subscribe(func(c string) { got = append(got, "b:"+c) })

	bus.Publish("jobseeker_notifications")

	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d: %v", len(got), got)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := NewBus()

	calls := 0
	cancel := bus.Subscribe(func(string) { calls++ })

	bus.Publish("recruiter_notifications")
	cancel()
	bus.Publish("recruiter_notifications")

	if calls != 1 {
		t.Errorf("expected 1 call after cancel, got %d", calls)
	}
}

func TestPublishWithNoSubscribers(t *testing.T) {
	bus := NewBus()
	// Must not panic.
	bus.Publish("jobseeker_notifications")
}

func TestCancelIsIdempotent(t *testing.T) {
	bus := NewBus()
	cancel := bus.Subscribe(func(string) {})
	cancel()
	cancel()
	bus.Publish("jobseeker_notifications")
}
