package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishDeliversOncePerSubscriber(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("help_requests")
	defer sub.Cancel()

	bus.Publish(Event{Table: "help_requests", Action: ActionInsert, ID: "r-1"})

	event := <-sub.C
	assert.Equal(t, "help_requests", event.Table)
	assert.Equal(t, ActionInsert, event.Action)
	assert.Equal(t, "r-1", event.ID)

	// exactly one delivery per event
	assert.Len(t, sub.C, 0)
}

func TestPublishIsScopedToTable(t *testing.T) {
	bus := NewBus()
	helpSub := bus.Subscribe("help_requests")
	defer helpSub.Cancel()
	responseSub := bus.Subscribe("responses")
	defer responseSub.Cancel()

	bus.Publish(Event{Table: "responses", Action: ActionInsert, ID: "resp-1"})

	assert.Len(t, helpSub.C, 0)
	assert.Len(t, responseSub.C, 1)
}

func TestCancelClosesChannel(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("help_requests")

	sub.Cancel()
	sub.Cancel() // safe to call twice

	_, ok := <-sub.C
	assert.False(t, ok)

	// publishing after cancel must not panic or deliver
	bus.Publish(Event{Table: "help_requests", Action: ActionUpdate, ID: "r-2"})
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("help_requests")
	defer sub.Cancel()

	for i := 0; i < subscriptionBuffer+10; i++ {
		bus.Publish(Event{Table: "help_requests", Action: ActionUpdate, ID: "r"})
	}

	assert.Len(t, sub.C, subscriptionBuffer)
}
