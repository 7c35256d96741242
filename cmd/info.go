package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/huttarl/slitherlink3D/grids"
)

// infoCmd prints structural statistics for a grid file or built-in.
var infoCmd = &cobra.Command{
	Use:   "info <grid>",
	Short: "Print vertex/edge/face statistics for a grid",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println("Built-in grids:")
			for _, n := range grids.Names() {
				g, err := grids.Platonic(n)
				if err != nil {
					return err
				}
				fmt.Printf("  %-14s %3d vertices, %3d faces\n",
					g.GridID, len(g.Vertices), len(g.Faces))
			}
			return nil
		}

		g, err := loadGrid(args[0])
		if err != nil {
			return err
		}
		topo, err := g.BuildTopology()
		if err != nil {
			return err
		}

		v, e, f := topo.VertexCount(), topo.EdgeCount(), topo.FaceCount()
		fmt.Printf("%s (%s)\n", g.GridName, g.GridID)
		fmt.Printf("  vertices: %d\n  edges:    %d\n  faces:    %d\n", v, e, f)
		if v-e+f == 2 {
			fmt.Println("  closed:   yes (V-E+F = 2)")
		} else {
			fmt.Printf("  closed:   NO (V-E+F = %d)\n", v-e+f)
		}

		sizes := map[int]int{}
		for _, face := range topo.FacesInOrder() {
			sizes[face.Degree()]++
		}
		var degrees []int
		for d := range sizes {
			degrees = append(degrees, d)
		}
		sort.Ints(degrees)
		fmt.Println("  face sizes:")
		for _, d := range degrees {
			fmt.Printf("    %d-gons: %d\n", d, sizes[d])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
