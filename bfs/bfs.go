package bfs

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/jfkriz/AdventOfCode-2024/grid"
)

// queueItem pairs a cell with its row-major index and BFS depth.
type queueItem struct {
	p     grid.Point
	idx   int
	depth int
}

// walker encapsulates mutable BFS state for one invocation.
type walker struct {
	width, height int
	opts          Options
	walls         []bool                 // row-major wall mask of the base grid
	blocked       mapset.Set[grid.Point] // query-scoped overlay
	queue         *queue.Queue[queueItem]
	res           *Result
	target        int // row-major index to stop at, or -1
}

// Distances runs breadth-first search on g from start and returns the full
// distance table. Every cell is enqueued once, at its minimum distance.
//
// Errors:
//   - ErrNilGrid, ErrStartOutOfBounds, ErrOptionViolation.
//   - Wrapped errors returned by the OnVisit hook.
//
// Complexity: O(W×H) time and memory.
func Distances[T any](g *grid.Grid[T], start grid.Point, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// ShortestPath returns the minimum number of steps from start to end, or
// Unreachable when no path exists. The search stops as soon as end is visited.
//
// Errors:
//   - ErrNilGrid, ErrStartOutOfBounds, ErrEndOutOfBounds, ErrOptionViolation.
//   - Wrapped errors returned by the OnVisit hook.
func ShortestPath[T any](g *grid.Grid[T], start, end grid.Point, opts ...Option) (int, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return Unreachable, err
	}
	if !g.Contains(end) {
		return Unreachable, fmt.Errorf("%w: %v", ErrEndOutOfBounds, end)
	}
	w.target = g.Index(end)
	if err := w.loop(); err != nil {
		return Unreachable, err
	}

	return w.res.depth[w.target], nil
}

// newWalker validates input, applies options and seeds the queue with start.
func newWalker[T any](g *grid.Grid[T], start grid.Point, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, m := range o.walls {
		if !grid.Compatible(m, g) {
			return nil, fmt.Errorf("%w: wall type does not match grid cells", ErrOptionViolation)
		}
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	n := g.Width() * g.Height()
	w := &walker{
		width:   g.Width(),
		height:  g.Height(),
		opts:    o,
		walls:   grid.Mask(g, o.walls...),
		blocked: mapset.New[grid.Point](),
		queue:   queue.New[queueItem](),
		target:  -1,
		res: &Result{
			Start:  start,
			width:  g.Width(),
			depth:  make([]int, n),
			parent: make([]int, n),
		},
	}
	for _, p := range o.Blocked {
		if g.Contains(p) {
			w.blocked.Put(p)
		}
	}
	for i := range w.res.depth {
		w.res.depth[i] = Unreachable
		w.res.parent[i] = -1
	}

	// Seed queue with start (no parent). The start is never treated as blocked.
	w.enqueue(start, g.Index(start), 0, -1)

	return w, nil
}

// enqueue records depth and parent of p and adds it to the queue.
func (w *walker) enqueue(p grid.Point, idx, depth, parent int) {
	w.res.depth[idx] = depth
	w.res.parent[idx] = parent
	w.queue.Enqueue(queueItem{p: p, idx: idx, depth: depth})
}

// loop processes the queue until empty, error, or the target is visited.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		item := w.queue.Dequeue()
		w.res.Order = append(w.res.Order, item.p)
		if err := w.opts.OnVisit(item.p, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.p, err)
		}
		if item.idx == w.target {
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies bounds, walls, the overlay, filtering and
// MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, n := range item.p.Neighbors(w.opts.Diagonals) {
		q := n.Point
		if q.X < 0 || q.X >= w.width || q.Y < 0 || q.Y >= w.height {
			continue
		}
		idx := q.Y*w.width + q.X
		if w.res.depth[idx] != Unreachable || w.walls[idx] || w.blocked.Has(q) {
			continue
		}
		if !w.opts.FilterNeighbor(item.p, q) {
			continue
		}
		w.enqueue(q, idx, nextDepth, item.idx)
	}
}
