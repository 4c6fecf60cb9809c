package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lance6716/netgroup/pkg/graph"
	"github.com/lance6716/netgroup/pkg/result"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	r := NewReport(&result.Result{
		TaskName:          "task1",
		Input:             "example",
		Node:              0,
		NodeComponentSize: 6,
		ComponentCount:    2,
		NodeCount:         7,
		EdgeCount:         13,
		Components:        [][]graph.ID{{0, 2, 3, 4, 5, 6}, {1}},
	})
	require.Equal(t, [][2]string{{"Task Name", "task1"}, {"Input", "example"}}, r.TaskInfoItems)
	require.Equal(t, Summary{
		Node:              0,
		NodeComponentSize: 6,
		ComponentCount:    2,
		NodeCount:         7,
		EdgeCount:         13,
	}, r.Summary)
	require.Equal(t, [][]string{
		{"1", "6", "0, 2, 3, 4, 5, 6"},
		{"2", "1", "1"},
	}, r.Components.Data)
}

func TestFormatMembers(t *testing.T) {
	ids := make([]graph.ID, 0, maxListedMembers+1)
	for i := 0; i <= maxListedMembers; i++ {
		ids = append(ids, graph.ID(i))
	}
	got := formatMembers(ids)
	require.True(t, strings.HasSuffix(got, "48, 49, ..."), got)
	require.Equal(t, "", formatMembers([]graph.ID{}))
}

func TestRender(t *testing.T) {
	r := &Report{
		TaskInfoItems: [][2]string{
			{"key1", "<value1>"},
		},
		Summary: Summary{
			Node:              3,
			NodeComponentSize: 2,
			ComponentCount:    1,
			NodeCount:         2,
			EdgeCount:         2,
		},
		Components: Table{
			Header: []string{"#", "Size", "Members"},
			Data: [][]string{
				{"1", "2", "3, 4"},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, render(r, &buf))
	out := buf.String()
	require.Contains(t, out, "&lt;value1&gt;")
	require.Contains(t, out, "Component Size of Node 3")
	require.Contains(t, out, "<td>3, 4</td>")

	filename := filepath.Join(t.TempDir(), "sub", "report.html")
	require.NoError(t, Render(r, filename))
	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	require.Equal(t, out, string(content))
}

func TestRenderError(t *testing.T) {
	dir := t.TempDir()
	// the target is an existing directory
	err := Render(&Report{}, dir)
	require.Error(t, err)
}
