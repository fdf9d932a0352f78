package core

import "fmt"

const (
	SegmentMiss = 0
	SegmentBull = 25

	MaxThrowsPerTurn = 3
)

// Throw is the result of a single dart.
type Throw struct {
	Segment    int `json:"segment"`
	Multiplier int `json:"multiplier"`
}

func (t Throw) Validate() error {
	switch {
	case t.Segment == SegmentMiss:
		if t.Multiplier != 1 {
			return fmt.Errorf("%w: miss must have multiplier 1, got %d", ErrInvalidThrow, t.Multiplier)
		}
	case t.Segment == SegmentBull:
		// 25 or 50, there is no triple bull
		if t.Multiplier != 1 && t.Multiplier != 2 {
			return fmt.Errorf("%w: bull multiplier must be 1 or 2, got %d", ErrInvalidThrow, t.Multiplier)
		}
	case t.Segment >= 1 && t.Segment <= 20:
		if t.Multiplier < 1 || t.Multiplier > 3 {
			return fmt.Errorf("%w: multiplier must be 1..3, got %d", ErrInvalidThrow, t.Multiplier)
		}
	default:
		return fmt.Errorf("%w: segment must be 0..20 or 25, got %d", ErrInvalidThrow, t.Segment)
	}
	return nil
}

func (t Throw) Value() int {
	return t.Segment * t.Multiplier
}

// IsDouble reports whether the dart landed in a double ring, bulls-eye included.
func (t Throw) IsDouble() bool {
	return t.Multiplier == 2
}

func (t Throw) String() string {
	switch {
	case t.Segment == SegmentMiss:
		return "MISS"
	case t.Segment == SegmentBull && t.Multiplier == 2:
		return "BULL"
	case t.Segment == SegmentBull:
		return "25"
	case t.Multiplier == 3:
		return fmt.Sprintf("T%d", t.Segment)
	case t.Multiplier == 2:
		return fmt.Sprintf("D%d", t.Segment)
	}
	return fmt.Sprintf("S%d", t.Segment)
}
