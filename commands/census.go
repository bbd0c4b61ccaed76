package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/maastricht-university/chaprep/orchestrator"
)

var censusFormat string

var censusCmd = &cobra.Command{
	Use:   "census <file.cha>...",
	Short: "Count substantive turns per speaker",
	Long: `Count, for every speaker code that opens a turn, the turns with more
than one character of text once timestamps, bracketed codes, numbers and
xxx are removed. Speakers are listed by descending count.

Examples:
  chaprep census gillam/SLI/5m/413.cha
  chaprep census --format csv gillam/TD/*/*.cha`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPipeline(cmd)
		if err != nil {
			return err
		}
		results, err := p.Census(cmd.Context(), args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch censusFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		case "csv":
			return orchestrator.WriteCensus(out, results)
		case "table":
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FILE\tSPEAKER\tTURNS")
			for _, r := range results {
				for _, c := range r.Tally {
					fmt.Fprintf(tw, "%s\t%s\t%d\n", r.File, c.Speaker, c.Count)
				}
			}
			return tw.Flush()
		default:
			return fmt.Errorf("unknown format %q (table, csv, json)", censusFormat)
		}
	},
}

func init() {
	censusCmd.Flags().StringVarP(&censusFormat, "format", "f", "table", "output format: table, csv or json")
}
