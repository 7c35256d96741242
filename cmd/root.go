// Package cmd wires the sli3d command-line interface: inspect and
// validate grid/puzzle files, convert OBJ meshes, watch files during
// authoring, and serve an interactive play session over websockets.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huttarl/slitherlink3D/gridio"
	"github.com/huttarl/slitherlink3D/grids"
)

// cfgFile stores an optional explicit path to a config file
// (if not provided we try ./sli3d.config.{json,yaml,toml} by default).
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sli3d",
	Short: "Slitherlink puzzles on closed polyhedral surfaces",
	// PersistentPreRunE executes before any subcommand; we use it to load config/env.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath(".")
			viper.SetConfigName("sli3d.config")
			// Let viper detect the extension (json/yaml/toml) automatically.
		}

		// Read env vars with prefix SLI3D_, e.g. SLI3D_GRID
		viper.SetEnvPrefix("SLI3D")
		viper.AutomaticEnv()

		// Read config file if present; it's ok if none is found.
		if err := viper.ReadInConfig(); err == nil {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
		return nil
	},
}

// Execute is called from main.go and starts the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sli3d.config.{json,yaml,toml})")
}

// loadGrid resolves ref either as a path to a grid JSON file or as a
// built-in name ("cube", "icosahedron", ...). Built-ins win only when
// no such file exists, so a local file named "cube" still loads.
func loadGrid(ref string) (*gridio.Grid, error) {
	if f, err := os.Open(ref); err == nil {
		defer f.Close()
		g, err := gridio.DecodeGrid(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ref, err)
		}
		return g, nil
	}

	g, err := grids.ByID(strings.ToLower(ref))
	if err != nil {
		return nil, fmt.Errorf("%q is neither a readable file nor a built-in grid: %w", ref, err)
	}
	return g, nil
}

// loadPuzzles reads and structurally validates a puzzle JSON file.
func loadPuzzles(path string) (*gridio.PuzzleFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pf, err := gridio.DecodePuzzles(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pf, nil
}
