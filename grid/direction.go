package grid

import "fmt"

// Direction is one of the 8 compass directions. Values are ordered clockwise
// starting at Up, so rotation is modular arithmetic on the value itself.
type Direction uint8

// Directions, clockwise from Up.
const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft

	numDirections = 8
)

// Cardinals lists the 4 axis-aligned directions in clockwise order.
var Cardinals = []Direction{Up, Right, Down, Left}

// All lists all 8 directions in clockwise order.
var All = []Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// offsets maps each Direction to its unit (dx, dy); y grows downward.
var offsets = [numDirections]Point{
	Up:        {0, -1},
	UpRight:   {1, -1},
	Right:     {1, 0},
	DownRight: {1, 1},
	Down:      {0, 1},
	DownLeft:  {-1, 1},
	Left:      {-1, 0},
	UpLeft:    {-1, -1},
}

var names = [numDirections]string{
	"Up", "UpRight", "Right", "DownRight", "Down", "DownLeft", "Left", "UpLeft",
}

// Offset returns the unit vector of d.
func (d Direction) Offset() Point {
	return offsets[d%numDirections]
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool {
	return d%2 == 1
}

// RotateCW rotates d clockwise. When includeDiagonals is false the rotation is
// 90° (Up → Right); otherwise it advances one step of the 8-direction cycle
// (Up → UpRight).
func (d Direction) RotateCW(includeDiagonals bool) Direction {
	return d.rotate(step(includeDiagonals))
}

// RotateCCW rotates d counter-clockwise; see RotateCW for the step size.
func (d Direction) RotateCCW(includeDiagonals bool) Direction {
	return d.rotate(numDirections - step(includeDiagonals))
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return d.rotate(numDirections / 2)
}

func (d Direction) rotate(by int) Direction {
	return Direction((int(d) + by) % numDirections)
}

func step(includeDiagonals bool) int {
	if includeDiagonals {
		return 1
	}

	return 2
}

// String returns the direction name, e.g. "UpLeft".
func (d Direction) String() string {
	if d >= numDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return names[d]
}

// ParseDirection maps a movement symbol to a cardinal Direction.
// Accepted symbols are ^ v < > and U D L R.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^', 'U':
		return Up, nil
	case 'v', 'D':
		return Down, nil
	case '<', 'L':
		return Left, nil
	case '>', 'R':
		return Right, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, r)
}

// ParseDirections parses every rune of s with ParseDirection.
func ParseDirections(s string) ([]Direction, error) {
	out := make([]Direction, 0, len(s))
	for _, r := range s {
		d, err := ParseDirection(r)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}
