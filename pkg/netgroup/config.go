package netgroup

import (
	"time"

	"github.com/lance6716/netgroup/pkg/graph"
	"github.com/lance6716/netgroup/pkg/util"
)

// Config is a static struct for netgroup's configuration.
type Config struct {
	TaskName  string
	InputPath string
	// Node is the node whose component size is reported.
	Node graph.ID

	// WorkDir receives result.json when it's not empty.
	WorkDir string
	// ReportPath receives the HTML report. It defaults to report.html in the
	// task directory when WorkDir is set.
	ReportPath string
	Log        util.LogConfig
}

const defaultInputPath = "example"

func (c *Config) ensureDefaults() {
	if c.TaskName == "" {
		c.TaskName = time.Now().Format(time.RFC3339)
	}
	if c.InputPath == "" {
		c.InputPath = defaultInputPath
	}
}
