package simulation

import (
	"chosenoffset.com/spritemask/internal/core/geom"
)

// MoveResolver turns an attempted move into a final position.
type MoveResolver interface {
	TryMove(pos, move geom.Point) geom.Point
}

// Mover is a point entity driven by the movement actions.
type Mover struct {
	Pos  geom.Point
	Move geom.Point // intent for the current tick
}

// Intent builds the per-tick move from the held actions. World y points up.
func Intent(in *InputState, speed float64) geom.Point {
	var move geom.Point
	if in.Held(ActionLeft) {
		move.X -= speed
	}
	if in.Held(ActionRight) {
		move.X += speed
	}
	if in.Held(ActionDown) {
		move.Y -= speed
	}
	if in.Held(ActionUp) {
		move.Y += speed
	}
	return move
}

// Step advances the mover by one tick.
func (m *Mover) Step(in *InputState, speed float64, resolver MoveResolver) {
	m.Move = Intent(in, speed)
	m.Pos = resolver.TryMove(m.Pos, m.Move)
}
