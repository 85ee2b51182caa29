package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/delford/twophase-cube/internal/cfen"
	"github.com/delford/twophase-cube/internal/cube"
	"github.com/delford/twophase-cube/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve applies a scramble (or a starting CFEN state) and runs the
two-phase search engine to find a solution.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")
		noRecord, _ := cmd.Flags().GetBool("no-record")

		c, err := startingCube(startCfen)
		if err != nil {
			exitErr(headless, "parsing starting state: %v", err)
		}

		if scramble != "" {
			moves, ok := cube.ParseMoves(scramble)
			if !ok {
				exitErr(headless, "parsing scramble %q", scramble)
			}
			c.ApplyMoves(moves)
		}

		if !headless {
			fmt.Printf("Solving cube with scramble: %s\n", scramble)
		}

		start := time.Now()
		progress := &solver.Progress{}
		solution := solver.SolveWithProgress(c, nil, progress)
		duration := time.Since(start)

		solved := c.Clone()
		solved.ApplyMoves(solution)

		if !noRecord {
			recordSolve(scramble, solution, int64(progress.Nodes.Load()), duration, false)
		}

		switch {
		case useCfenOutput:
			fmt.Print(cfen.Generate(solved))
		case headless:
			fmt.Print(cube.FormatMoves(solution))
		default:
			fmt.Printf("Solution: %s\n", cube.FormatMoves(solution))
			fmt.Printf("Moves: %d\n", len(solution))
			fmt.Printf("Nodes searched: %d\n", progress.Nodes.Load())
			fmt.Printf("Time: %v\n", duration)
		}
	},
}

func init() {
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output final cube state as a CFEN string instead of moves")
	solveCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: solved)")
	solveCmd.Flags().Bool("no-record", false, "Skip recording this solve to the history database")
}

// startingCube builds a cube from a CFEN string, or a solved cube if s is empty.
func startingCube(s string) (*cube.Cube, error) {
	if s == "" {
		return cube.NewSolved(), nil
	}
	state, err := cfen.Parse(s)
	if err != nil {
		return nil, err
	}
	return state.ToCube()
}

func exitErr(headless bool, format string, args ...any) {
	if !headless {
		fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	}
	os.Exit(1)
}

// recordSolve best-effort persists a solve to the history database; a
// storage failure never aborts the command it is recording for.
func recordSolve(scramble string, solution []cube.Move, nodes int64, duration time.Duration, cancelled bool) {
	db, err := openDB()
	if err != nil {
		return
	}
	defer db.Close()

	repo := solveRepo(db)
	id, err := repo.Start(scramble)
	if err != nil {
		return
	}
	_ = repo.Finish(id, cube.FormatMoves(solution), nodes, duration, cancelled)
}
