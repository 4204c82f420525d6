package cli

import (
	"database/sql"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/etlkit/bigquery-exporter/internal/pkg/encoding/json"
	"github.com/etlkit/bigquery-exporter/internal/pkg/log"
	"github.com/etlkit/bigquery-exporter/internal/pkg/utils/errors"
	"github.com/etlkit/bigquery-exporter/pkg/export"
	"github.com/etlkit/bigquery-exporter/pkg/export/bigquery"
	"github.com/etlkit/bigquery-exporter/pkg/export/sqlsource"
	exportRun "github.com/etlkit/bigquery-exporter/pkg/lib/operation/export/run"
)

type runFlags struct {
	config         string
	pullDate       string
	skipIfExported bool
	errorsOutput   bool
}

// runDependencies wires the clock, the logger and the destination client
// for the export run operation.
type runDependencies struct {
	clock  clockwork.Clock
	logger log.Logger
	client export.TableClient
}

func (d *runDependencies) Clock() clockwork.Clock          { return d.clock }
func (d *runDependencies) Logger() log.Logger              { return d.logger }
func (d *runDependencies) TableClient() export.TableClient { return d.client }

func runCommand(root *RootCommand) *cobra.Command {
	f := runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the export defined by the config file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := LoadConfig(ctx, f.config)
			if err != nil {
				return err
			}

			pullDate, err := parsePullDate(f.pullDate)
			if err != nil {
				return err
			}

			db, err := sql.Open(cfg.Source.Driver, cfg.Source.DSN)
			if err != nil {
				return errors.PrefixError(err, "cannot open source database")
			}
			defer db.Close()

			qs, err := sqlsource.New(db, cfg.Source.Query, cfg.Source.OrderBy)
			if err != nil {
				return err
			}

			client, err := bigquery.NewClient(ctx, cfg.BigQuery)
			if err != nil {
				return err
			}
			defer client.Close()

			def := cfg.definition()
			def.Source = qs

			d := &runDependencies{clock: clockwork.NewRealClock(), logger: root.logger, client: client}
			rowErrs, err := exportRun.Run(ctx, exportRun.Options{
				Definition:     def,
				PullDate:       pullDate,
				SkipIfExported: f.skipIfExported,
			}, d)

			if f.errorsOutput && len(rowErrs) > 0 {
				_, _ = io.WriteString(root.stdout, json.MustEncodeString(rowErrs, true)+"\n")
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = true
	flags.StringVarP(&f.config, "config", "c", "", "path to the config file")
	flags.StringVar(&f.pullDate, "pull-date", "", `pull date of the run, "YYYY-MM-DD" or "YYYY-MM-DD hh:mm:ss", defaults to now`)
	flags.BoolVar(&f.skipIfExported, "skip-if-exported", false, "skip the run if the table already has data for the pull date")
	flags.BoolVar(&f.errorsOutput, "errors-json", false, "print rejected rows to stdout as JSON")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// parsePullDate accepts a date or a date with a time, both in UTC.
func parsePullDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{export.TimeFormat, "2006-01-02"} {
		if v, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return &v, nil
		}
	}
	return nil, errors.Errorf(`unexpected format of the pull date "%s", expected "YYYY-MM-DD" or "YYYY-MM-DD hh:mm:ss"`, value)
}
