// SPDX-License-Identifier: MIT
//
// File: walk.go
// Role: Breadth-first traversal of cells across shared faces (CellWalk) and
//       face-connected component labelling (CellComponents).
// Policy:
//   - Two cells are adjacent when they own opposite halffaces of one face.
//   - Works with or without face bottom-up incidences; without them the
//     halfface owners are collected once per call in O(Σ cell valence).
//   - Deleted cells are never visited.

package core

import "github.com/katalvlaran/volmesh/handle"

// cellQueueItem pairs a cell with its BFS depth.
type cellQueueItem struct {
	c     handle.Cell
	depth int
}

// cellWalker encapsulates mutable BFS state.
type cellWalker struct {
	k       *Kernel
	owner   []handle.Cell // halfface -> cell
	visited []bool
	queue   []cellQueueItem
}

func (k *Kernel) newCellWalker() *cellWalker {
	w := &cellWalker{k: k, visited: make([]bool, len(k.cells))}
	if k.faceBU {
		w.owner = k.incidentCell
		return w
	}
	w.owner = make([]handle.Cell, 2*len(k.faces))
	for i := range w.owner {
		w.owner[i] = handle.InvalidCell
	}
	for c, cell := range k.cells {
		if k.cellDeleted[c] {
			continue
		}
		for _, hf := range cell.HalfFaces {
			w.owner[hf] = handle.Cell(c)
		}
	}
	return w
}

func (w *cellWalker) enqueue(c handle.Cell, depth int) {
	w.visited[c] = true
	w.queue = append(w.queue, cellQueueItem{c: c, depth: depth})
}

func (w *cellWalker) dequeue() cellQueueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// run walks from start until the queue drains or fn returns false.
func (w *cellWalker) run(start handle.Cell, fn func(handle.Cell, int) bool) {
	w.enqueue(start, 0)
	for len(w.queue) > 0 {
		item := w.dequeue()
		if !fn(item.c, item.depth) {
			w.queue = w.queue[:0]
			return
		}
		for _, hf := range w.k.cells[item.c].HalfFaces {
			nbr := w.owner[handle.Opposite(hf)]
			if nbr.IsValid() && !w.visited[nbr] && !w.k.cellDeleted[nbr] {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}
}

// CellWalk visits the live cells reachable from start through shared faces
// in breadth-first order. fn receives each cell with its distance from start
// in face hops; returning false stops the walk. An invalid or deleted start
// visits nothing.
// Complexity: O(C + Σ cell valence).
func (k *Kernel) CellWalk(start handle.Cell, fn func(c handle.Cell, depth int) bool) {
	if !k.liveCell(start) {
		k.violation("CellWalk", "start is not a live cell")
		return
	}
	k.newCellWalker().run(start, fn)
}

// CellComponents labels every live cell with the index of its face-connected
// component, numbered in order of the lowest cell handle they contain.
// Deleted cells are labelled -1. n is the number of components.
// Complexity: O(C + Σ cell valence).
func (k *Kernel) CellComponents() (labels []int, n int) {
	labels = make([]int, len(k.cells))
	for i := range labels {
		labels[i] = -1
	}
	w := k.newCellWalker()
	for c := range k.Cells() {
		if w.visited[c] {
			continue
		}
		w.run(c, func(x handle.Cell, _ int) bool {
			labels[x] = n
			return true
		})
		n++
	}
	return labels, n
}
