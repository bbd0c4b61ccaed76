package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Enumerate the corpus and write a stratified train/dev/test split",
	Long: `Enumerate <root>/<name>/<group>/<subgroup>/*.cha and split the files
into train, dev and test sets stratified by group and age.

Writes <name>_all.csv, <name>_train.csv, <name>_dev.csv, <name>_test.csv and
manifest.json into a new directory under paths.outputs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPipeline(cmd)
		if err != nil {
			return err
		}
		res, err := p.Split(cmd.Context())
		if err != nil {
			return err
		}
		m := res.Manifest
		fmt.Fprintf(cmd.OutOrStdout(), "Train: %d Dev: %d Test: %d\n", m.Counts["train"], m.Counts["dev"], m.Counts["test"])
		fmt.Fprintln(cmd.OutOrStdout(), res.Dir)
		return nil
	},
}
