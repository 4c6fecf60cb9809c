// Package graph holds an undirected graph read from adjacency-list text.
package graph

import (
	"io"
	"strconv"
	"strings"

	"github.com/lance6716/netgroup/pkg/util"
	"github.com/pingcap/errors"
)

// ID identifies a node.
type ID uint64

// Separator splits a node's own id from its neighbor list.
const Separator = " <-> "

// Graph maps every declared node to its neighbor list. It is not modified after
// Parse returns.
type Graph struct {
	adj   map[ID][]ID
	order []ID
	edges int
}

// Parse parses text where each line has the format "{id} <-> {id}[, {id}]*".
// The first malformed line aborts the parse.
func Parse(text string) (*Graph, error) {
	g := &Graph{adj: make(map[ID][]ID)}
	if text == "" {
		return g, nil
	}

	lines := strings.Split(text, "\n")
	// a single newline at the end of the last line
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		id, neighbors, err := parseLine(line)
		if err != nil {
			return nil, errors.Trace(&util.ParseError{
				Line:   i + 1,
				Text:   line,
				Reason: err.Error(),
			})
		}
		g.add(id, neighbors)
	}
	return g, nil
}

// ParseReader reads all content from r and parses it.
func ParseReader(r io.Reader) (*Graph, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return Parse(string(content))
}

func parseLine(line string) (ID, []ID, error) {
	if line == "" {
		return 0, nil, errors.New("empty line")
	}
	idStr, netStr, found := strings.Cut(line, Separator)
	if !found {
		return 0, nil, errors.Errorf("missing separator %q", Separator)
	}
	id, err := parseID(idStr)
	if err != nil {
		return 0, nil, err
	}

	fields := strings.Split(netStr, ",")
	neighbors := make([]ID, 0, len(fields))
	for _, f := range fields {
		n, err := parseID(strings.TrimSpace(f))
		if err != nil {
			return 0, nil, err
		}
		neighbors = append(neighbors, n)
	}
	return id, neighbors, nil
}

func parseID(s string) (ID, error) {
	if s == "" {
		return 0, errors.New("missing node id")
	}
	// base 10 rejects signs, "0x" prefixes and underscores
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid node id %q", s)
	}
	return ID(v), nil
}

func (g *Graph) add(id ID, neighbors []ID) {
	if _, ok := g.adj[id]; !ok {
		g.order = append(g.order, id)
	}
	g.adj[id] = append(g.adj[id], neighbors...)
	g.edges += len(neighbors)
}

// Neighbors returns the neighbor list declared for id. Caller should not modify
// the returned slice.
func (g *Graph) Neighbors(id ID) ([]ID, error) {
	neighbors, ok := g.adj[id]
	if !ok {
		return nil, errors.Trace(&util.UnknownIDError{ID: uint64(id)})
	}
	return neighbors, nil
}

// Contains reports whether id is declared as the leading id of some line.
func (g *Graph) Contains(id ID) bool {
	_, ok := g.adj[id]
	return ok
}

// IDs returns the declared ids in the order they first appear.
func (g *Graph) IDs() []ID {
	ret := make([]ID, len(g.order))
	copy(ret, g.order)
	return ret
}

// Len returns the number of declared ids.
func (g *Graph) Len() int {
	return len(g.order)
}

// EdgeCount returns the number of declared (id, neighbor) pairs, self-loops and
// duplicates included.
func (g *Graph) EdgeCount() int {
	return g.edges
}
