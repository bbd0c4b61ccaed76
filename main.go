// Command chaprep prepares CHAT transcript corpora for modeling.
//
// Usage:
//
//	chaprep [--config file] <command> [args]
//
// Commands:
//
//	split    - enumerate the corpus and write a stratified train/dev/test split
//	census   - count substantive turns per speaker in transcripts
//	extract  - extract cleaned utterances of selected speakers from one file
//	batch    - extract utterances for every transcript of a split CSV
//	config   - show the effective configuration
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/maastricht-university/chaprep/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
