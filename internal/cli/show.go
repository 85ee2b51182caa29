package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/delford/twophase-cube/internal/cube"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show the cube state after applying a scramble",
	Long: `Show applies a scramble to a solved cube and prints the resulting
facelet state in an unfolded cross layout.

Examples:
  cube show "R U R' U'"
  cube show "R U R' U'" --color`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		useColor, _ := cmd.Flags().GetBool("color")

		c := cube.NewSolved()
		if scramble != "" {
			moves, ok := cube.ParseMoves(scramble)
			if !ok {
				fmt.Printf("Error parsing scramble: %q\n", scramble)
				return
			}
			c.ApplyMoves(moves)
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Solved cube state:")
		}

		fmt.Println(unfoldedString(c, useColor))
	},
}

func init() {
	showCmd.Flags().BoolP("color", "c", false, "Use ANSI colored output")
}

// ansiColors maps each Color to its terminal foreground escape code.
var ansiColors = [cube.NumColors]string{
	cube.White:  "\033[97m",
	cube.Yellow: "\033[93m",
	cube.Green:  "\033[92m",
	cube.Blue:   "\033[94m",
	cube.Red:    "\033[91m",
	cube.Orange: "\033[33m",
}

const ansiReset = "\033[0m"

func formatSticker(color cube.Color, useColor bool) string {
	if !useColor {
		return color.String()
	}
	return ansiColors[color] + "█" + ansiReset
}

// unfoldedString renders c as an unfolded cross: U on top, L/F/R/B across
// the middle, D on the bottom.
func unfoldedString(c *cube.Cube, useColor bool) string {
	var sb strings.Builder
	padding := strings.Repeat(" ", 4)

	writeFaceRow := func(f cube.Face, row int) {
		for col := 0; col < 3; col++ {
			sb.WriteString(formatSticker(c.Facelets[int(f)*9+row*3+col], useColor))
			sb.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		sb.WriteString(padding)
		writeFaceRow(cube.U, row)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	middle := [4]cube.Face{cube.L, cube.F, cube.R, cube.B}
	for row := 0; row < 3; row++ {
		for _, f := range middle {
			writeFaceRow(f, row)
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	for row := 0; row < 3; row++ {
		sb.WriteString(padding)
		writeFaceRow(cube.D, row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
