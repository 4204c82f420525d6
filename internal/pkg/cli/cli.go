// Package cli defines the bqexport command line interface.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/etlkit/bigquery-exporter/internal/pkg/log"
	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
	"github.com/etlkit/bigquery-exporter/internal/pkg/version"
)

type RootCommand struct {
	*cobra.Command
	logger    log.Logger
	stdout    io.Writer
	stderr    io.Writer
	verbose   bool
	logFormat string
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer) *RootCommand {
	root := &RootCommand{stdout: stdout, stderr: stderr}
	root.Command = &cobra.Command{
		Use:           "bqexport",
		Short:         "Export records from a relational database to a BigQuery table.",
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			format, err := log.NewLogFormat(root.logFormat)
			if err != nil {
				return err
			}
			root.logger = log.NewCliLogger(stdout, stderr, format, root.verbose)
			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("{{.Version}}")

	flags := root.PersistentFlags()
	flags.SortFlags = true
	flags.BoolVarP(&root.verbose, "verbose", "v", false, "print debug log")
	flags.StringVar(&root.logFormat, "log-format", string(log.LogFormatConsole), "log format, console or json")

	root.AddCommand(runCommand(root))

	return root
}

// Execute the command, the error is logged, not returned.
func (root *RootCommand) Execute() (exitCode int) {
	if err := root.Command.Execute(); err != nil {
		if root.logger == nil {
			root.logger = log.NewCliLogger(root.stdout, root.stderr, log.LogFormatConsole, false)
		}
		_, _ = io.WriteString(root.stderr, "Error: "+errors.Format(err)+"\n")
		return 1
	}
	return 0
}
