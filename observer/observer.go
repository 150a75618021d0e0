package observer

import (
	"github.com/GianlucaGuarini/go-observable"

	"github.com/calehh/dao-app/types"
)

// GovObserver carries every event the engine emits; triggers are keyed by
// the event type names in types/events.go. Subscribers must not call back
// into mutating operations.
var GovObserver = observable.New()

func Publish(event types.Event) {
	GovObserver.Trigger(event.Type, event)
}
