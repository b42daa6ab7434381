package cmd

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	m "gooze.dev/pkg/testrunner/internal/model"
)

// recordSeparator joins the ids of merged records.
const recordSeparator = "+"

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [records...]",
		Short: "View previously recorded runs",
		Long: `View the run record written by run or coverage (default: the --output file).

Given several records, their test results are merged into one: each category
is the union over the records and the first failure per test wins.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{viper.GetString(outputFlagName)}
			}

			ctx := cmd.Context()
			records := make([]m.RunRecord, 0, len(paths))

			for _, path := range paths {
				record, err := reportStore.LoadReport(ctx, m.Path(path))
				if err != nil {
					return err
				}

				records = append(records, record)
			}

			return newUI(cmd).DisplayRecord(ctx, mergeRecords(records))
		},
	}

	return cmd
}

// mergeRecords combines the test results of records. A single record is
// returned unchanged.
func mergeRecords(records []m.RunRecord) m.RunRecord {
	if len(records) == 1 {
		return records[0]
	}

	merged := m.RunRecord{Kind: m.RunKindTests}
	ids := make([]string, 0, len(records))

	for i, record := range records {
		ids = append(ids, record.ID)

		if i == 0 || record.Started.Before(merged.Started) {
			merged.Started = record.Started
		}

		merged.Duration += record.Duration

		for _, class := range record.Options.Classes {
			if !slices.Contains(merged.Options.Classes, class) {
				merged.Options.Classes = append(merged.Options.Classes, class)
			}
		}

		merged.Result = merged.Result.Merge(record.Result)
	}

	merged.ID = strings.Join(ids, recordSeparator)
	merged.Options.Binaries = records[0].Options.Binaries

	return merged
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
