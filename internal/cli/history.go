package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently recorded solves",
	Long:  `History lists solves recorded by solve/serve to the history database, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := solveRepo(db)
		solves, err := repo.List(limit)
		if err != nil {
			return fmt.Errorf("listing history: %w", err)
		}

		if len(solves) == 0 {
			fmt.Println("No solves recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-8s  %-6s  %s\n", "ID", "Started", "Nodes", "Moves", "Scramble")
		for _, s := range solves {
			moves := "-"
			if s.Solution != "" {
				moves = fmt.Sprintf("%d", len(strings.Fields(s.Solution)))
			}
			fmt.Printf("%-36s  %-20s  %-8d  %-6s  %s\n",
				s.ID, s.StartedAt.Format("2006-01-02 15:04:05"), s.NodeCount, moves, s.Scramble)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of solves to display")
}

