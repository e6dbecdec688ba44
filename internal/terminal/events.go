package terminal

import "github.com/gdamore/tcell/v2"

// EventSource is the blocking half of tcell.Screen.
type EventSource interface {
	PollEvent() tcell.Event
}

// PollEvents forwards events from src on a buffered channel so a tick loop
// can drain them without blocking. The channel closes when src returns nil,
// which tcell does once the screen is finalized.
func PollEvents(src EventSource) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	return events
}

// Drain applies every pending key event to in without blocking. It reports
// false once events is closed.
func Drain(events <-chan tcell.Event, in *Intents) bool {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				in.Apply(ActionForKey(key))
			}
		default:
			return true
		}
	}
}
