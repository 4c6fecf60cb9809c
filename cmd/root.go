package cmd

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/lance6716/netgroup/pkg/graph"
	"github.com/lance6716/netgroup/pkg/netgroup"
	"github.com/lance6716/netgroup/pkg/util"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "netgroup [input-file]",
		Short: "A tool used to count the connected groups of an adjacency-list graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &netgroup.Config{
				TaskName:   taskName,
				Node:       graph.ID(node),
				WorkDir:    workDir,
				ReportPath: reportPath,
				Log: util.LogConfig{
					Filename: logFile,
					Level:    logLevel,
				},
			}
			if len(args) > 0 {
				cfg.InputPath = args[0]
			}
			res, err := netgroup.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return res.WriteText(cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

var (
	taskName   string
	node       uint64
	workDir    string
	reportPath string
	logFile    string
	logLevel   string
)

const (
	envWorkDir  = "NETGROUP_WORK_DIR"
	envLogFile  = "NETGROUP_LOG_FILE"
	envLogLevel = "NETGROUP_LOG_LEVEL"
)

func init() {
	cobra.OnInitialize()
	// a missing .env file is fine, variables may come from the environment
	_ = godotenv.Load()

	rootCmd.Flags().Uint64VarP(&node, "node", "n", 0, "node whose group size is reported")
	rootCmd.PersistentFlags().StringVar(&taskName, "task-name", "", "task name, defaults to the start time")
	rootCmd.PersistentFlags().StringVarP(&workDir, "work-dir", "w", os.Getenv(envWorkDir), "work directory to save result.json")
	rootCmd.PersistentFlags().StringVar(&reportPath, "report", "", "path of the HTML report")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", os.Getenv(envLogFile), "log file, defaults to stdout")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", os.Getenv(envLogLevel), "log level of the log file")
}
