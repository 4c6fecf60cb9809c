package netgroup

import (
	"context"

	"github.com/lance6716/netgroup/pkg/disjointset"
	"github.com/lance6716/netgroup/pkg/filemgr"
	"github.com/lance6716/netgroup/pkg/graph"
	"github.com/lance6716/netgroup/pkg/report"
	"github.com/lance6716/netgroup/pkg/result"
	"github.com/lance6716/netgroup/pkg/util"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Run is the main entry function of the netgroup logic. It reads the input
// graph, groups the nodes and writes the optional outputs. Nothing is returned
// when any step fails.
func Run(ctx context.Context, cfg *Config) (*result.Result, error) {
	cfg.ensureDefaults()
	if err := util.InitLogger(cfg.Log); err != nil {
		return nil, errors.Trace(err)
	}

	text, err := util.ReadText(cfg.InputPath)
	if err != nil {
		return nil, errors.Trace(err)
	}
	g, err := graph.Parse(text)
	if err != nil {
		return nil, errors.Annotatef(err, "parse input %s", cfg.InputPath)
	}
	util.Logger.Info("input parsed",
		zap.String("input", cfg.InputPath),
		zap.Int("nodes", g.Len()),
		zap.Int("edges", g.EdgeCount()))
	if err = ctx.Err(); err != nil {
		return nil, errors.Trace(err)
	}

	sets, err := disjointset.Build(g)
	if err != nil {
		return nil, errors.Annotatef(err, "group nodes of %s", cfg.InputPath)
	}
	if err = ctx.Err(); err != nil {
		return nil, errors.Trace(err)
	}

	size, err := sets.ComponentSize(cfg.Node)
	if err != nil {
		return nil, errors.Annotatef(err, "query component of node %d", cfg.Node)
	}
	count, err := sets.ComponentCount(g.IDs())
	if err != nil {
		return nil, errors.Trace(err)
	}
	res := &result.Result{
		TaskName:          cfg.TaskName,
		Input:             cfg.InputPath,
		Node:              cfg.Node,
		NodeComponentSize: size,
		ComponentCount:    count,
		NodeCount:         g.Len(),
		EdgeCount:         g.EdgeCount(),
		Components:        sets.Components(),
	}
	util.Logger.Info("nodes grouped",
		zap.String("task", cfg.TaskName),
		zap.Uint64("node", uint64(cfg.Node)),
		zap.Int("nodeComponentSize", size),
		zap.Int("components", count))

	if err = writeOutputs(cfg, res); err != nil {
		return nil, errors.Trace(err)
	}
	return res, nil
}

func writeOutputs(cfg *Config, res *result.Result) error {
	reportPath := cfg.ReportPath
	if cfg.WorkDir != "" {
		mgr := filemgr.NewManager(cfg.WorkDir, cfg.TaskName)
		if err := mgr.WriteResult(res); err != nil {
			return errors.Annotatef(err, "write result to %s", mgr.ResultPath())
		}
		util.Logger.Info("result written", zap.String("path", mgr.ResultPath()))
		if reportPath == "" {
			reportPath = mgr.ReportPath()
		}
	}
	if reportPath != "" {
		if err := report.Render(report.NewReport(res), reportPath); err != nil {
			return errors.Annotatef(err, "render report to %s", reportPath)
		}
		util.Logger.Info("report rendered", zap.String("path", reportPath))
	}
	return nil
}
