package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/delford/twophase-cube/internal/cube"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Scramble prints a random, irreducible sequence of moves: no face is
immediately repeated, and of two opposite faces the earlier one in U, D, L,
R, F, B order never immediately follows the later one (D may follow U, but
U never follows D).`,
	Run: func(cmd *cobra.Command, args []string) {
		length, _ := cmd.Flags().GetInt("length")
		moves := cube.NewSolved().Scramble(length)
		fmt.Println(cube.FormatMoves(moves))
	},
}

func init() {
	scrambleCmd.Flags().IntP("length", "n", 25, "Number of moves to generate")
}
