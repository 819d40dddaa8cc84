// Package greet implements a small entity world whose systems greet named
// people on a repeating timer.
package greet

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scenes/internal/logger"
)

// Position is a 2D location component.
type Position struct {
	X, Y float32
}

// Entity is a bag of optional components.
type Entity struct {
	ID       uint32
	Name     string    // Empty when the entity has no name
	Position *Position // nil when the entity has no position
	Person   bool
}

// World owns the entities, the greet timer and the output sink.
type World struct {
	entities []*Entity
	nextID   uint32
	timer    *Timer
	out      io.Writer
	log      *zap.Logger
	frames   int
}

// NewWorld creates an empty world. Systems write their lines to out.
func NewWorld(out io.Writer, period time.Duration) *World {
	return &World{
		nextID: 1,
		timer:  NewTimer(period),
		out:    out,
		log:    logger.Named("greet"),
	}
}

// Spawn adds an entity and assigns its ID.
func (w *World) Spawn(e Entity) *Entity {
	e.ID = w.nextID
	w.nextID++
	ent := &e
	w.entities = append(w.entities, ent)
	return ent
}

// Entities returns all entities in spawn order.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Timer returns the greet timer.
func (w *World) Timer() *Timer {
	return w.timer
}

// AddPeople spawns the startup population: three named people, one
// positioned person and one bare position.
func AddPeople(w *World) {
	w.Spawn(Entity{Person: true, Name: "Elaina Proctor"})
	w.Spawn(Entity{Person: true, Name: "Renzo Hume"})
	w.Spawn(Entity{Person: true, Name: "Zayna Nieves"})
	w.Spawn(Entity{Person: true, Name: "Sidney", Position: &Position{X: 3, Y: 4}})
	w.Spawn(Entity{Position: &Position{X: 1, Y: 2}})

	w.log.Debug("people added", zap.Int("entities", len(w.entities)))
}

// Tick advances the timer, then runs every system in order.
func (w *World) Tick(dt time.Duration) {
	w.frames++
	w.timer.Tick(dt)
	if !w.timer.JustFinished() {
		return
	}

	w.log.Debug("greet timer finished",
		zap.Int("frame", w.frames),
		zap.Int("times", w.timer.TimesFinished()),
	)

	w.printPositions()
	w.greetPeople()
	w.printPositionedPeople()
	w.printTimer()
}

// printPositions prints positions that do not belong to a person.
func (w *World) printPositions() {
	for _, e := range w.entities {
		if e.Position != nil && !e.Person {
			w.printf("position: %v %v\n", e.Position.X, e.Position.Y)
		}
	}
}

func (w *World) greetPeople() {
	for _, e := range w.entities {
		if e.Person && e.Name != "" {
			w.printf("hello %s!\n", e.Name)
		}
	}
}

func (w *World) printPositionedPeople() {
	for _, e := range w.entities {
		if e.Person && e.Name != "" && e.Position != nil {
			w.printf("%s is at %v %v\n", e.Name, e.Position.X, e.Position.Y)
		}
	}
}

func (w *World) printTimer() {
	w.printf("timer: %v\n", w.timer.Elapsed())
}

func (w *World) printf(format string, args ...any) {
	if w.out == nil {
		return
	}
	if _, err := fmt.Fprintf(w.out, format, args...); err != nil {
		w.log.Warn("write failed", zap.Error(err))
	}
}
