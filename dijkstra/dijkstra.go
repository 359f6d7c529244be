package dijkstra

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// Search runs a direction-aware Dijkstra over g and returns the minimum cost
// to any goal cell together with every cell lying on some minimum-cost path.
//
// Moves from a state (p, d):
//
//   - straight:       (p+d, d)         priced Cost(d, d)
//   - clockwise:      (p+cw(d), cw(d))   priced Cost(d, cw(d))
//   - anticlockwise:  (p+ccw(d), ccw(d)) priced Cost(d, ccw(d))
//
// Walls and cells outside the grid are never entered. The source cell is
// always a valid origin.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrBadMaxCost, ErrOptionViolation).
//
// A step cost ≤ 0 met during the search aborts it with ErrNonPositiveCost.
//  3. Source must be set (ErrNoSource) and inside g (ErrSourceOutOfBounds).
//  4. A goal must be set (ErrNoGoal).
//
// An unreachable goal is not an error: Result.Cost is Unreachable and
// Result.Reached is false.
//
// Complexity:
//
//	A (point, direction) pair is re-expanded every time it is reached again at
//	its best cost, once per distinct optimal partial path. On grids with many
//	equal-cost routes this grows with the number of such routes rather than
//	with W×H; corridor mazes stay close to O(S log S) for S = 4×W×H states.
func Search[T any](g *grid.Grid[T], opts ...Option) (*Result, error) {
	// 1) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	for _, m := range cfg.walls {
		if !grid.Compatible(m, g) {
			return nil, fmt.Errorf("%w: wall type does not match grid cells", ErrOptionViolation)
		}
	}

	// 3) Validate source and goal
	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if !g.Contains(cfg.Source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, cfg.Source)
	}
	if cfg.Goal == nil {
		return nil, ErrNoGoal
	}

	// 4) Prepare runner state
	r := newRunner(g, cfg)

	// 5) Run main loop and assemble the result
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// trail is an immutable parent-linked list of the cells on one path.
// Extending a path shares its prefix, so a push costs O(1).
type trail struct {
	p    grid.Point
	prev *trail
}

// entry is one queued path head.
type entry struct {
	cost  int
	state State
	trail *trail
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	width, height int
	cfg           Options
	walls         []bool // row-major wall mask
	best          []int  // best cost per (cell, direction); index cell*8+dir
	pq            *heap.Heap[entry]

	cost  int
	ends  []State
	tiles mapset.Set[grid.Point]
	paths int
}

func newRunner[T any](g *grid.Grid[T], cfg Options) *runner {
	n := g.Width() * g.Height()
	r := &runner{
		width:  g.Width(),
		height: g.Height(),
		cfg:    cfg,
		walls:  grid.Mask(g, cfg.walls...),
		best:   make([]int, n*len(grid.All)),
		pq:     heap.New[entry](func(a, b entry) bool { return a.cost < b.cost }),
		cost:   Unreachable,
		tiles:  mapset.New[grid.Point](),
	}
	for i := range r.best {
		r.best[i] = Unreachable
	}

	start := State{Point: cfg.Source, Facing: cfg.Facing}
	r.best[r.key(start)] = 0
	r.pq.Push(entry{cost: 0, state: start, trail: &trail{p: cfg.Source}})

	return r
}

func (r *runner) key(s State) int {
	return (s.Point.Y*r.width+s.Point.X)*len(grid.All) + int(s.Facing)
}

// process drains the queue in cost order.
//
// Loop termination conditions:
//
//   - The heap becomes empty.
//   - A goal was reached at cost C and the next entry costs more than C.
func (r *runner) process() error {
	for r.pq.Size() > 0 {
		// 1) Pop the cheapest path head.
		e, _ := r.pq.Pop()

		// 2) Every goal entry at the optimal cost has been seen.
		if e.cost > r.cost {
			break
		}

		// 3) Skip entries superseded by a strictly cheaper arrival.
		if e.cost > r.best[r.key(e.state)] {
			continue
		}

		// 4) Goal: record this path and do not extend it.
		if r.cfg.Goal(e.state.Point) {
			r.reach(e)
			continue
		}

		// 5) Extend with the three moves.
		if err := r.relax(e); err != nil {
			return err
		}
	}

	return nil
}

// reach folds a goal entry at the optimal cost into the result.
func (r *runner) reach(e entry) {
	if r.cost == Unreachable {
		r.cost = e.cost
	}
	r.paths++
	known := false
	for _, s := range r.ends {
		if s == e.state {
			known = true
			break
		}
	}
	if !known {
		r.ends = append(r.ends, e.state)
	}
	for t := e.trail; t != nil; t = t.prev {
		r.tiles.Put(t.p)
	}
}

// relax pushes every enterable successor whose cost does not exceed the best
// cost recorded for its state. Equal costs are pushed again so that alternate
// optimal paths keep their own trails.
func (r *runner) relax(e entry) error {
	d := e.state.Facing
	for _, nd := range [...]grid.Direction{d, d.RotateCW(false), d.RotateCCW(false)} {
		np := e.state.Point.Move(nd)
		if np.X < 0 || np.X >= r.width || np.Y < 0 || np.Y >= r.height {
			continue
		}
		if r.walls[np.Y*r.width+np.X] {
			continue
		}

		step := r.cfg.Cost(d, nd)
		if step <= 0 {
			return fmt.Errorf("%w: %v→%v cost %d", ErrNonPositiveCost, d, nd, step)
		}
		// e.cost ≤ MaxCost always holds, so the subtraction cannot overflow
		if step > r.cfg.MaxCost-e.cost {
			continue
		}
		nc := e.cost + step

		next := State{Point: np, Facing: nd}
		k := r.key(next)
		if nc > r.best[k] {
			continue
		}
		r.best[k] = nc
		r.pq.Push(entry{cost: nc, state: next, trail: &trail{p: np, prev: e.trail}})
	}

	return nil
}

func (r *runner) result() *Result {
	res := &Result{Cost: r.cost, Reached: r.cost != Unreachable, Ends: r.ends, Paths: r.paths}
	r.tiles.Each(func(p grid.Point) {
		res.Tiles = append(res.Tiles, p)
	})
	sort.Slice(res.Tiles, func(i, j int) bool {
		a, b := res.Tiles[i], res.Tiles[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return res
}
