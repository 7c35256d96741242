package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/huttarl/slitherlink3D/checker"
	"github.com/huttarl/slitherlink3D/guess"
	"github.com/huttarl/slitherlink3D/puzzle"
	"github.com/huttarl/slitherlink3D/topology"
)

var validatePuzzles string

// validateCmd checks a grid file and, optionally, a puzzle file against
// it: structural validity, clue ranges, and that every reference
// solution actually solves its puzzle.
var validateCmd = &cobra.Command{
	Use:   "validate <grid>",
	Short: "Validate a grid file and its puzzles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if validatePuzzles == "" {
			validatePuzzles = viper.GetString("puzzles")
		}
		return runValidation(cmd.OutOrStdout(), args[0], validatePuzzles)
	},
}

// runValidation is the core shared with the watch command. It reports
// every defect it can find in one pass rather than stopping at the
// first.
func runValidation(out io.Writer, gridRef, puzzlePath string) error {
	g, err := loadGrid(gridRef)
	if err != nil {
		return err
	}
	topo, err := g.BuildTopology()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "grid %s: ok (%d vertices, %d edges, %d faces)\n",
		g.GridID, topo.VertexCount(), topo.EdgeCount(), topo.FaceCount())

	if puzzlePath == "" {
		return nil
	}

	pf, err := loadPuzzles(puzzlePath)
	if err != nil {
		return err
	}

	ov := puzzle.NewOverlay(topo)
	if err := ov.SetData(pf.Set(), g.GridID); err != nil {
		return err
	}

	var errs error
	for i := 0; i < ov.Len(); i++ {
		if err := checkPuzzle(topo, ov, i); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("puzzle %d: %w", i, err))
			continue
		}
		fmt.Fprintf(out, "puzzle %d: ok\n", i)
	}
	if errs != nil {
		return errs
	}
	fmt.Fprintf(out, "puzzles %s: %d ok\n", pf.GridID, ov.Len())

	return nil
}

// checkPuzzle verifies one puzzle end to end: clues apply cleanly, the
// solution is a valid cycle, and playing the solution onto an empty
// board satisfies every clue with a single loop.
func checkPuzzle(topo *topology.Topology, ov *puzzle.Overlay, index int) error {
	if err := ov.Select(index); err != nil {
		return err
	}
	if err := ov.ApplyClues(); err != nil {
		return err
	}
	if err := ov.ValidateSolution(); err != nil {
		return err
	}

	edges, err := ov.SolutionEdges()
	if err != nil {
		return err
	}
	board := guess.NewBoard()
	for _, eid := range edges {
		board.Set(eid, guess.Filled)
	}

	res := checker.Check(topo, board)
	if !res.Solved {
		var errs error
		for _, v := range res.Violations {
			errs = multierr.Append(errs, fmt.Errorf("reference solution: %s", v))
		}
		return errs
	}

	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validatePuzzles, "puzzles", "", "puzzle JSON file to validate against the grid")
	_ = viper.BindPFlag("puzzles", validateCmd.Flags().Lookup("puzzles"))
}
