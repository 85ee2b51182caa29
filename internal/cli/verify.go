package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/delford/twophase-cube/internal/cfen"
	"github.com/delford/twophase-cube/internal/cube"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <moves>",
	Short: "Verify a move sequence transforms a start state to a target state",
	Long: `Verify checks that applying a move sequence to a start state produces
a target state. Both states are given in CFEN notation, which supports a
wildcard sticker ('?') for positions the caller doesn't care about.

Examples:
  # Verify an algorithm solves from a scramble back to solved
  cube verify "R U R' U' U R U' R'"

  # Verify against explicit start/target CFEN states
  cube verify "U R U' R'" --start "W9/B9/R9/Y9/G9/O9" --target "?9/B9/R9/Y9/G9/O9"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := args[0]

		startCFEN, _ := cmd.Flags().GetString("start")
		targetCFEN, _ := cmd.Flags().GetString("target")
		verbose, _ := cmd.Flags().GetBool("verbose")
		headless, _ := cmd.Flags().GetBool("headless")
		useColor, _ := cmd.Flags().GetBool("color")

		if startCFEN == "" {
			startCFEN = "W9/B9/R9/Y9/G9/O9"
		}
		if targetCFEN == "" {
			targetCFEN = "W9/B9/R9/Y9/G9/O9"
		}

		startState, err := cfen.Parse(startCFEN)
		if err != nil {
			exitErr(headless, "parsing start CFEN: %v", err)
		}
		targetState, err := cfen.Parse(targetCFEN)
		if err != nil {
			exitErr(headless, "parsing target CFEN: %v", err)
		}

		c, err := startState.ToCube()
		if err != nil {
			exitErr(headless, "converting start CFEN to a cube: %v", err)
		}

		if verbose && !headless {
			fmt.Println("Start state (from CFEN):")
			fmt.Println(unfoldedString(c, useColor))
		}

		moves, ok := cube.ParseMoves(algorithm)
		if !ok {
			exitErr(headless, "parsing move sequence %q", algorithm)
		}
		c.ApplyMoves(moves)

		if verbose && !headless {
			fmt.Printf("\nAfter %q:\n", algorithm)
			fmt.Println(unfoldedString(c, useColor))
		}

		if targetState.Matches(c) {
			if !headless {
				fmt.Println("PASS: reaches the target state")
				fmt.Printf("Moves: %d\n", len(moves))
				if verbose {
					fmt.Printf("Start:  %s\n", startCFEN)
					fmt.Printf("Target: %s\n", targetCFEN)
					fmt.Printf("Actual: %s\n", cfen.Generate(c))
				}
			}
			os.Exit(0)
		}

		if !headless {
			fmt.Println("FAIL: does not reach the target state")
			if verbose {
				fmt.Printf("Start:  %s\n", startCFEN)
				fmt.Printf("Target: %s\n", targetCFEN)
				fmt.Printf("Actual: %s\n", cfen.Generate(c))
			} else {
				fmt.Println("Tip: use --verbose to see the cube states")
			}
		}
		os.Exit(1)
	},
}

func init() {
	verifyCmd.Flags().String("start", "", "Starting CFEN state (defaults to solved)")
	verifyCmd.Flags().String("target", "", "Target CFEN state (defaults to solved)")
	verifyCmd.Flags().BoolP("verbose", "v", false, "Show cube states before and after")
	verifyCmd.Flags().Bool("headless", false, "Exit 0 for pass, 1 for fail, no output")
	verifyCmd.Flags().BoolP("color", "c", false, "Use ANSI colored output")
}
