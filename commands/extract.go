package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maastricht-university/chaprep/orchestrator"
)

var (
	speakers []string
	toStdout bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.cha>",
	Short: "Extract cleaned utterances of selected speakers",
	Long: `Extract the turns of the given speaker codes in document order and
write order,speaker,text,clean_text rows to <paths.outputs>/<subject>.csv.
Turns whose cleaned text is one character or less are dropped; the order
column keeps their numbering.

Examples:
  chaprep extract gillam/SLI/5m/413.cha --speakers CHI,EXA
  chaprep extract 413.cha -s CHI --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPipeline(cmd)
		if err != nil {
			return err
		}
		if toStdout {
			utts, err := p.Extract(cmd.Context(), args[0], speakers)
			if err != nil {
				return err
			}
			return orchestrator.WriteUtterances(cmd.OutOrStdout(), utts)
		}
		res, err := p.ExtractFile(cmd.Context(), args[0], speakers)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d utterances -> %s\n", res.Utterances, res.Output)
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <split.csv>",
	Short: "Extract utterances for every transcript of a split CSV",
	Long: `Read a split CSV written by 'chaprep split' and extract every listed
transcript in parallel (pipeline.workers) into one CSV per subject, with a
summary.json next to them.

Example:
  chaprep batch outputs/split_20250101-120000/gillam_train.csv -s CHI,EXA`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPipeline(cmd)
		if err != nil {
			return err
		}
		res, err := p.ExtractSplit(cmd.Context(), args[0], speakers)
		if err != nil {
			return err
		}
		total := 0
		for _, f := range res.Files {
			total += f.Utterances
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d utterances (%s)\n", len(res.Files), total, res.SessionID)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{extractCmd, batchCmd} {
		c.Flags().StringSliceVarP(&speakers, "speakers", "s", nil, "speaker codes to keep (default extract.speakers)")
	}
	extractCmd.Flags().BoolVar(&toStdout, "stdout", false, "write CSV to stdout instead of the outputs directory")
}
