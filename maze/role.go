package maze

import "strconv"

// Role tells what a square is used for. Values fit in 4 bits.
type Role uint8

const (
	None Role = iota
	Enemy
	Entrance
	Exit
	Exterior
	Reward
	Wall
)

var roleNames = [...]string{
	None:     "NONE",
	Enemy:    "ENEMY",
	Entrance: "ENTRANCE",
	Exit:     "EXIT",
	Exterior: "EXTERIOR",
	Reward:   "REWARD",
	Wall:     "WALL",
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return int(r) < len(roleNames)
}

// Traversable reports whether a square with this role can be walked on.
// Exterior and Wall squares are the only ones that cannot.
func (r Role) Traversable() bool {
	return r != Exterior && r != Wall
}

func (r Role) String() string {
	if r.Valid() {
		return roleNames[r]
	}
	return "Role(" + strconv.Itoa(int(r)) + ")"
}
