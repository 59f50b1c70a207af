// Package event defines the various event types that can
// be sent to a display.Driver. This package is separate from
// the display package to avoid circular dependencies.
package event

// Type defines the various event types
// that can be sent to a display.Driver. The event type
// indicates to the display.Driver what action should be
// taken.
type Type int

const (
	// Quit is sent when the user requests that the
	// application be closed.
	Quit Type = iota
	// FrameTime is periodically sent to the display.Driver
	// to indicate the average time taken to render a frame.
	FrameTime
	// Title is sent to the display.Driver to describe what
	// is being displayed, such as the dump's file name.
	Title
)

// Event is the data structure that is sent to the display.Driver
// to indicate an event has occurred. Data may or may not
// contain any data, depending on the event type.
type Event struct {
	// Type is the type of event
	Type Type
	// Data is the data of the event
	Data interface{}
}
