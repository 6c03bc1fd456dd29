package rustique

// FillAt flood-fills the contiguous region of the active layer around
// (x, y), recording every write into the in-progress stroke. The region is
// the set of cells equal to the seed cell reachable across 4-connected
// neighbors; diagonal contact does not connect. An unpainted fill erases
// the region.
//
// Out-of-bounds seeds, a hidden active layer, and a fill equal to the seed
// cell are silent no-ops.
func (e *Editor) FillAt(x, y int, fill Cell) {
	w := e.canvas.width
	h := e.canvas.height
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	if !e.canvas.ActiveLayer().Visible() {
		return
	}

	target := e.canvas.ActiveCell(x, y)
	if target == fill {
		return
	}

	type point struct{ x, y int }
	queue := make([]point, 0, 1024)
	visited := make([]bool, w*h)
	queue = append(queue, point{x, y})

	filled := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		// Neighbors are enqueued before they are checked, so a cell can
		// sit in the queue twice; re-test on dequeue.
		if visited[p.y*w+p.x] || e.canvas.ActiveCell(p.x, p.y) != target {
			continue
		}
		visited[p.y*w+p.x] = true
		e.record(p.x, p.y, fill)
		filled++

		if p.x > 0 {
			queue = append(queue, point{p.x - 1, p.y})
		}
		if p.x+1 < w {
			queue = append(queue, point{p.x + 1, p.y})
		}
		if p.y > 0 {
			queue = append(queue, point{p.x, p.y - 1})
		}
		if p.y+1 < h {
			queue = append(queue, point{p.x, p.y + 1})
		}
	}

	Logger().Debug("flood fill", "x", x, "y", y, "cells", filled)
	e.dirty = true
}
