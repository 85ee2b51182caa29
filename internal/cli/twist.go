package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/delford/twophase-cube/internal/cfen"
	"github.com/delford/twophase-cube/internal/cube"
)

var twistCmd = &cobra.Command{
	Use:   "twist <moves>",
	Short: "Apply moves to a cube and display the result",
	Long: `Twist applies a sequence of moves to a cube and displays the
resulting state. It does not solve the cube - it just applies the moves.
Useful for exploring algorithms and setting up starting positions.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --color`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")

		c, err := startingCube(startCfen)
		if err != nil {
			fmt.Printf("Error parsing starting state: %v\n", err)
			os.Exit(1)
		}

		if !useCfenOutput {
			fmt.Printf("Applying moves: %s\n", moves)
		}

		parsedMoves, ok := cube.ParseMoves(moves)
		if !ok {
			if !useCfenOutput {
				fmt.Printf("Error parsing moves: %q\n", moves)
			}
			os.Exit(1)
		}
		c.ApplyMoves(parsedMoves)

		if useCfenOutput {
			fmt.Print(cfen.Generate(c))
			return
		}

		useColor, _ := cmd.Flags().GetBool("color")
		fmt.Printf("\nCube state after applying moves:\n%s\n", unfoldedString(c, useColor))
		fmt.Printf("Moves applied: %d\n", len(parsedMoves))
		if c.IsSolved() {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	twistCmd.Flags().BoolP("color", "c", false, "Use ANSI colored output")
	twistCmd.Flags().Bool("cfen", false, "Output final cube state as a CFEN string")
	twistCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: solved)")
}
