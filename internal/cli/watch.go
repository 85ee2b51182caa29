package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/delford/twophase-cube/internal/cube"
	"github.com/delford/twophase-cube/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch [scramble]",
	Short: "Solve a scramble with a live progress dashboard",
	Long: `Watch runs the search engine on a background goroutine and shows a
live terminal dashboard of nodes searched, phase-1 depth, and elapsed time.
Press q or Esc to cancel, or again to exit once the solve is finished.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}

		c := cube.NewSolved()
		if scramble != "" {
			moves, ok := cube.ParseMoves(scramble)
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: parsing scramble %q\n", scramble)
				os.Exit(1)
			}
			c.ApplyMoves(moves)
		}

		start := time.Now()
		solution, err := tui.Run(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		noRecord, _ := cmd.Flags().GetBool("no-record")
		if !noRecord {
			recordSolve(scramble, solution, 0, time.Since(start), len(solution) == 0 && !c.IsSolved())
		}
	},
}

func init() {
	watchCmd.Flags().Bool("no-record", false, "Skip recording this solve to the history database")
}
