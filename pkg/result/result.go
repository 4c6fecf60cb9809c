// Package result defines the outcome of one connected components run.
package result

import (
	"fmt"
	"io"

	"github.com/lance6716/netgroup/pkg/graph"
	"github.com/pingcap/errors"
)

// Result is the final output unit of netgroup. It is written as text to the
// console and as JSON to the work directory.
type Result struct {
	TaskName string `json:"task_name"`
	Input    string `json:"input"`

	Node              graph.ID `json:"node"`
	NodeComponentSize int      `json:"node_component_size"`
	ComponentCount    int      `json:"component_count"`

	NodeCount  int          `json:"node_count"`
	EdgeCount  int          `json:"edge_count"`
	Components [][]graph.ID `json:"components"`
}

// WriteText writes the size of the queried node's component and the number of
// components.
func (r *Result) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Set[%d].size = %d\nGroups = %d\n",
		r.Node, r.NodeComponentSize, r.ComponentCount)
	return errors.Trace(err)
}
