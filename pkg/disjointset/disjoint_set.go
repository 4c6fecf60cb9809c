// Package disjointset partitions the nodes of a graph into connected
// components with a union-find forest.
package disjointset

import (
	"cmp"
	"slices"

	"github.com/lance6716/netgroup/pkg/graph"
	"github.com/lance6716/netgroup/pkg/util"
	"github.com/pingcap/errors"
)

// Entry is the record kept for every element. Size is only meaningful when the
// entry is a root, i.e. Parent == ID.
type Entry struct {
	ID     graph.ID
	Size   int
	Parent graph.ID
}

func (e Entry) isRoot() bool {
	return e.Parent == e.ID
}

// DisjointSet is a union-by-size forest over a fixed universe of ids. Parents
// are stored as ids in a flat map, and FindRoot does not compress paths.
//
// It's not concurrent safe. Callers must serialize Union calls.
type DisjointSet struct {
	entries map[graph.ID]Entry
	order   []graph.ID
}

// New creates a DisjointSet where every id is a singleton set. Duplicated ids
// are ignored.
func New(ids []graph.ID) *DisjointSet {
	d := &DisjointSet{
		entries: make(map[graph.ID]Entry, len(ids)),
		order:   make([]graph.ID, 0, len(ids)),
	}
	for _, id := range ids {
		if _, ok := d.entries[id]; ok {
			continue
		}
		d.entries[id] = Entry{ID: id, Size: 1, Parent: id}
		d.order = append(d.order, id)
	}
	return d
}

// Build creates a DisjointSet for all declared ids of g, then unions every node
// with each of its neighbors. A neighbor which is not declared is an error.
func Build(g *graph.Graph) (*DisjointSet, error) {
	ids := g.IDs()
	d := New(ids)
	for _, a := range ids {
		neighbors, err := g.Neighbors(a)
		if err != nil {
			return nil, errors.Trace(err)
		}
		for _, b := range neighbors {
			if err = d.Union(a, b); err != nil {
				return nil, errors.Annotatef(err, "union %d and %d", a, b)
			}
		}
	}
	return d, nil
}

func (d *DisjointSet) entry(id graph.ID) (Entry, error) {
	e, ok := d.entries[id]
	if !ok {
		return Entry{}, errors.Trace(&util.UnknownIDError{ID: uint64(id)})
	}
	return e, nil
}

// FindRoot follows parent links from id and returns the root of its tree.
func (d *DisjointSet) FindRoot(id graph.ID) (graph.ID, error) {
	e, err := d.entry(id)
	if err != nil {
		return 0, err
	}
	for !e.isRoot() {
		e = d.entries[e.Parent]
	}
	return e.ID, nil
}

// Union merges the sets containing a and b. The root of the larger set becomes
// the parent. When both sets have the same size, the root of b becomes the
// parent.
func (d *DisjointSet) Union(a, b graph.ID) error {
	rootA, err := d.FindRoot(a)
	if err != nil {
		return err
	}
	rootB, err := d.FindRoot(b)
	if err != nil {
		return err
	}
	if rootA == rootB {
		return nil
	}

	parent, child := d.entries[rootB], d.entries[rootA]
	if child.Size > parent.Size {
		parent, child = child, parent
	}
	child.Parent = parent.ID
	parent.Size += child.Size
	d.entries[child.ID] = child
	d.entries[parent.ID] = parent
	return nil
}

// ComponentSize returns the number of elements in the set containing id.
func (d *DisjointSet) ComponentSize(id graph.ID) (int, error) {
	root, err := d.FindRoot(id)
	if err != nil {
		return 0, err
	}
	return d.entries[root].Size, nil
}

// ComponentCount returns the number of distinct roots among universe.
func (d *DisjointSet) ComponentCount(universe []graph.ID) (int, error) {
	roots := make(map[graph.ID]struct{})
	for _, id := range universe {
		root, err := d.FindRoot(id)
		if err != nil {
			return 0, err
		}
		roots[root] = struct{}{}
	}
	return len(roots), nil
}

// Count returns the number of disjoint sets over all known ids.
func (d *DisjointSet) Count() int {
	// all ids in d.order are known
	n, _ := d.ComponentCount(d.order)
	return n
}

// Get returns a copy of the root entry of the set containing id.
func (d *DisjointSet) Get(id graph.ID) (Entry, error) {
	root, err := d.FindRoot(id)
	if err != nil {
		return Entry{}, err
	}
	return d.entries[root], nil
}

// Len returns the number of known ids.
func (d *DisjointSet) Len() int {
	return len(d.order)
}

// IDs returns the known ids in insertion order.
func (d *DisjointSet) IDs() []graph.ID {
	return slices.Clone(d.order)
}

// Components returns all disjoint sets, larger sets first. For determinism,
// sets of the same size are ordered by their smallest element. Elements in each
// set are sorted.
func (d *DisjointSet) Components() [][]graph.ID {
	byRoot := make(map[graph.ID][]graph.ID)
	for _, id := range d.order {
		root, _ := d.FindRoot(id)
		byRoot[root] = append(byRoot[root], id)
	}
	ret := make([][]graph.ID, 0, len(byRoot))
	for _, set := range byRoot {
		slices.Sort(set)
		ret = append(ret, set)
	}
	slices.SortFunc(ret, func(a, b []graph.ID) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return cmp.Compare(a[0], b[0])
	})
	return ret
}
