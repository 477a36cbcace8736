package realtime

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

const logPrefix = "realtime"

// change event actions
const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// subscriptionBuffer bounds the per-subscriber queue. A subscriber that
// falls this far behind loses events instead of blocking writers.
const subscriptionBuffer = 16

// Event describes a committed row change on a watched table. Consumers are
// expected to re-run their own query on any event rather than patch state
// incrementally.
type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

// Publisher is the write side of the change bus.
type Publisher interface {
	Publish(Event)
}

// Subscription is a cancelable handle on one table's change feed. C is
// closed by Cancel.
type Subscription struct {
	C chan Event

	bus   *Bus
	table string
	once  sync.Once
}

// Cancel detaches the subscription and closes its channel. Safe to call
// more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.bus.remove(s)
		close(s.C)
	})
}

// Bus fans change events out to per-table subscribers.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]bool
}

func NewBus() *Bus {
	return &Bus{
		subs: map[string]map[*Subscription]bool{},
	}
}

// Subscribe registers a listener for changes on a table.
func (b *Bus) Subscribe(table string) *Subscription {
	sub := &Subscription{
		C:     make(chan Event, subscriptionBuffer),
		bus:   b,
		table: table,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[table] == nil {
		b.subs[table] = map[*Subscription]bool{}
	}
	b.subs[table][sub] = true
	return sub
}

// Publish delivers an event to every live subscriber of its table. Each
// subscriber receives the event at most once.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[e.Table] {
		select {
		case sub.C <- e:
		default:
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"table":  e.Table,
			}).Warn("drop event for slow subscriber")
		}
	}
}

func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs[sub.table], sub)
}
