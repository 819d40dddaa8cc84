// Package input handles SDL2 input events and per-frame key state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for scene use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseEnter
	EventMouseLeave
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
}

// Input handles all input processing.
// Held keys persist across frames; Events only holds the last Update.
type Input struct {
	events      []Event
	held        map[sdl.Scancode]bool
	justPressed map[sdl.Scancode]bool

	mouseX, mouseY int
	cursorInside   bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:      make([]Event, 0, 16),
		held:        make(map[sdl.Scancode]bool),
		justPressed: make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and converts them to scene events.
// Returns true if the scene should quit.
func (i *Input) Update() bool {
	i.BeginFrame()

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
			i.Apply(Event{Type: EventQuit})

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED:
				i.Apply(Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)})
			case sdl.WINDOWEVENT_ENTER:
				i.Apply(Event{Type: EventMouseEnter})
			case sdl.WINDOWEVENT_LEAVE:
				i.Apply(Event{Type: EventMouseLeave})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.Apply(Event{Type: EventKeyDown, Key: e.Keysym.Scancode, Repeat: e.Repeat != 0})
			} else if e.Type == sdl.KEYUP {
				i.Apply(Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseMotionEvent:
			i.Apply(Event{Type: EventMouseMove, MouseX: int(e.X), MouseY: int(e.Y)})
		}
	}

	return quit
}

// BeginFrame forgets the previous frame's events and fresh key presses.
// Held keys and the cursor persist.
func (i *Input) BeginFrame() {
	i.events = i.events[:0] // Clear previous events
	clear(i.justPressed)
}

// Apply records a single event. Update calls it for every SDL event; tests
// and replays can feed events directly.
func (i *Input) Apply(e Event) {
	i.events = append(i.events, e)

	switch e.Type {
	case EventKeyDown:
		if !e.Repeat && !i.held[e.Key] {
			i.justPressed[e.Key] = true
		}
		i.held[e.Key] = true
	case EventKeyUp:
		delete(i.held, e.Key)
	case EventMouseMove:
		i.mouseX, i.mouseY = e.MouseX, e.MouseY
		i.cursorInside = true
	case EventMouseEnter:
		i.cursorInside = true
	case EventMouseLeave:
		i.cursorInside = false
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Pressed reports whether the key is currently held down.
func (i *Input) Pressed(key sdl.Scancode) bool {
	return i.held[key]
}

// AnyPressed reports whether any of the keys is held down.
func (i *Input) AnyPressed(keys ...sdl.Scancode) bool {
	for _, k := range keys {
		if i.held[k] {
			return true
		}
	}
	return false
}

// JustPressed reports whether the key went down during the last Update.
func (i *Input) JustPressed(key sdl.Scancode) bool {
	return i.justPressed[key]
}

// ControlHeld reports whether either Ctrl key is held.
func (i *Input) ControlHeld() bool {
	return i.AnyPressed(sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL)
}

// Cursor returns the last cursor position and whether it is inside the window.
func (i *Input) Cursor() (x, y int, inside bool) {
	return i.mouseX, i.mouseY, i.cursorInside
}
