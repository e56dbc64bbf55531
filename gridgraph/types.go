package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// Default weight adjustments.
const (
	DefaultBonus   int64 = 1
	DefaultPenalty int64 = 2
)

// Options holds the role-based weight adjustments.
type Options struct {
	// Bonus is subtracted from the distance when the destination is a Reward.
	Bonus int64
	// Penalty is added to the distance when the destination is an Enemy.
	Penalty int64
}

// Option mutates Options before a build.
type Option func(*Options)

// DefaultOptions returns Bonus=1, Penalty=2.
func DefaultOptions() Options {
	return Options{Bonus: DefaultBonus, Penalty: DefaultPenalty}
}

// WithBonus sets the Reward bonus.
func WithBonus(bonus int64) Option {
	return func(o *Options) { o.Bonus = bonus }
}

// WithPenalty sets the Enemy penalty.
func WithPenalty(penalty int64) Option {
	return func(o *Options) { o.Penalty = penalty }
}

// Validate rejects adjustments that could produce a negative edge weight.
// The shortest edge has distance 1, so the bonus may not exceed 1.
func (o Options) Validate() error {
	if o.Bonus < 0 || o.Bonus > 1 {
		return fmt.Errorf("%w: got %d", ErrBadBonus, o.Bonus)
	}
	if o.Penalty < 0 {
		return fmt.Errorf("%w: got %d", ErrBadPenalty, o.Penalty)
	}

	return nil
}

// Edge is an undirected candidate link between two nodes, From < To in scan order.
type Edge struct {
	From, To maze.Square
}
