package report

import (
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lance6716/netgroup/pkg/result"
	"github.com/pingcap/errors"
)

var t = template.Must(template.New("report").Parse(tpl))

type Report struct {
	TaskInfoItems [][2]string // [key, value]
	Summary       Summary
	Components    Table
}

type Summary struct {
	Node              uint64
	NodeComponentSize int
	ComponentCount    int
	NodeCount         int
	EdgeCount         int
}

type Table struct {
	Header []string
	Data   [][]string
}

// maxListedMembers limits the members column of one component row.
const maxListedMembers = 50

// NewReport converts a result to the report layout.
func NewReport(r *result.Result) *Report {
	ret := &Report{
		TaskInfoItems: [][2]string{
			{"Task Name", r.TaskName},
			{"Input", r.Input},
		},
		Summary: Summary{
			Node:              uint64(r.Node),
			NodeComponentSize: r.NodeComponentSize,
			ComponentCount:    r.ComponentCount,
			NodeCount:         r.NodeCount,
			EdgeCount:         r.EdgeCount,
		},
		Components: Table{
			Header: []string{"#", "Size", "Members"},
			Data:   make([][]string, 0, len(r.Components)),
		},
	}
	for i, c := range r.Components {
		ret.Components.Data = append(ret.Components.Data, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(len(c)),
			formatMembers(c),
		})
	}
	return ret
}

func formatMembers[T ~uint64](ids []T) string {
	var sb strings.Builder
	for i, id := range ids {
		if i == maxListedMembers {
			sb.WriteString(", ...")
			break
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return sb.String()
}

// Render writes the HTML report to outFilename, creating its directory if
// needed.
func Render(r *Report, outFilename string) error {
	if err := os.MkdirAll(filepath.Dir(outFilename), 0776); err != nil {
		return errors.Trace(err)
	}
	file, err := os.Create(outFilename)
	if err != nil {
		return errors.Trace(err)
	}
	if err = render(r, file); err != nil {
		_ = file.Close()
		return err
	}
	return errors.Trace(file.Close())
}

func render(r *Report, out io.Writer) error {
	return errors.Trace(t.Execute(out, r))
}
