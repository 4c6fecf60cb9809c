package filemgr

import (
	"encoding/json"
	"os"
	"path"

	"github.com/lance6716/netgroup/pkg/result"
	"github.com/lance6716/netgroup/pkg/util"
	"github.com/pingcap/errors"
)

const (
	resultFilename = "result.json"
	reportFilename = "report.html"
)

// Manager owns a folder and organizes the files written by one netgroup task.
// Every task has its own sub directory named after the escaped task name.
type Manager struct {
	workDir  string
	taskName string
}

// NewManager creates a new Manager instance on the given work directory.
func NewManager(workDir, taskName string) *Manager {
	return &Manager{workDir: workDir, taskName: taskName}
}

// TaskDir returns the directory holding all files of the task.
func (m *Manager) TaskDir() string {
	return path.Join(m.workDir, util.EscapePath(m.taskName))
}

// ResultPath returns the path of the result file.
func (m *Manager) ResultPath() string {
	return path.Join(m.TaskDir(), resultFilename)
}

// ReportPath returns the default path of the HTML report.
func (m *Manager) ReportPath() string {
	return path.Join(m.TaskDir(), reportFilename)
}

// WriteResult writes the result to the file as JSON.
func (m *Manager) WriteResult(r *result.Result) error {
	content, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(util.AtomicWrite(m.ResultPath(), content))
}

// ReadResult reads back the result written by WriteResult.
func (m *Manager) ReadResult() (*result.Result, error) {
	content, err := os.ReadFile(m.ResultPath())
	if err != nil {
		return nil, errors.Annotatef(err, "read result file %s", m.ResultPath())
	}
	r := &result.Result{}
	if err = json.Unmarshal(content, r); err != nil {
		return nil, errors.Annotatef(err, "decode result file %s", m.ResultPath())
	}
	return r, nil
}
