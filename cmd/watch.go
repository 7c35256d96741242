package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var watchPuzzles string

// watchCmd revalidates a grid (and optionally its puzzles) whenever the
// files change, for a tight authoring loop.
var watchCmd = &cobra.Command{
	Use:   "watch <grid.json>",
	Short: "Watch grid and puzzle files and revalidate on every change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gridPath := args[0]
		if watchPuzzles == "" {
			watchPuzzles = viper.GetString("puzzles")
		}

		revalidate := func() {
			if err := runValidation(cmd.OutOrStdout(), gridPath, watchPuzzles); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "invalid:", err)
			}
		}
		revalidate()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		// Watch directories, not files: editors that write via
		// rename-and-replace would otherwise drop the watch.
		watched := map[string]bool{}
		for _, p := range []string{gridPath, watchPuzzles} {
			if p == "" {
				continue
			}
			dir := filepath.Dir(p)
			if !watched[dir] {
				if err := watcher.Add(dir); err != nil {
					return err
				}
				watched[dir] = true
			}
		}

		interesting := func(name string) bool {
			clean := filepath.Clean(name)
			return clean == filepath.Clean(gridPath) ||
				(watchPuzzles != "" && clean == filepath.Clean(watchPuzzles))
		}

		// Debounce bursts of events from a single save.
		var mu sync.Mutex
		var timer *time.Timer
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !interesting(ev.Name) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				mu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(300*time.Millisecond, revalidate)
				mu.Unlock()
			case err := <-watcher.Errors:
				fmt.Fprintln(os.Stderr, "watch error:", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPuzzles, "puzzles", "", "puzzle JSON file to revalidate with the grid")
}
