package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/huttarl/slitherlink3D/gridio"
)

var (
	convertOut       string
	convertNormalize bool
)

// convertCmd turns a Wavefront OBJ mesh into grid JSON. The mesh must
// be a closed surface; open meshes are rejected.
var convertCmd = &cobra.Command{
	Use:   "convert <mesh.obj>",
	Short: "Convert a closed OBJ mesh into a grid JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		g, err := gridio.ConvertOBJ(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		if convertNormalize {
			g.Normalize()
		}

		out := cmd.OutOrStdout()
		if convertOut != "" {
			dst, err := os.Create(convertOut)
			if err != nil {
				return err
			}
			defer dst.Close()
			out = dst
		}
		if err := g.Encode(out); err != nil {
			return err
		}
		if convertOut != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d vertices, %d faces)\n",
				convertOut, len(g.Vertices), len(g.Faces))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertOut, "out", "", "write grid JSON to file (default: stdout)")
	convertCmd.Flags().BoolVar(&convertNormalize, "normalize", true, "center the mesh and scale it to unit size")
}
