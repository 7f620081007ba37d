package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bethropolis/worldedit/internal/world"
	"github.com/spf13/cobra"
)

var inspectAutoSave bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print a summary of a saved document",
	Long:  "Print the collections of a document and how many objects of each kind they hold. Files ending in .zst are read as autosave snapshots.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0], inspectAutoSave)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVarP(&inspectAutoSave, "autosave", "a", false, "Inspect the autosave snapshot of the document instead")
}

// readDocument loads a document or an autosave snapshot into a new world.
func readDocument(path string) (*world.World, error) {
	w := world.New("", nil)
	if !strings.HasSuffix(path, ".zst") {
		if err := w.LoadFile(path); err != nil {
			return nil, err
		}
		return w, nil
	}
	data, err := world.ReadAutoSave(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read autosave '%s': %w", path, err)
	}
	if err := w.UnmarshalDocument(data); err != nil {
		return nil, err
	}
	return w, nil
}

func inspect(out io.Writer, path string, autosave bool) error {
	if autosave {
		path = world.AutoSavePath(path)
	}
	w, err := readDocument(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Document: %s\n", w.Name)
	fmt.Fprintln(out, "====================")
	total := 0
	for _, c := range w.Collections() {
		state := "loaded"
		if !c.Loaded() {
			state = "unloaded"
			c.Load()
		}
		counts := make(map[string]int)
		for _, obj := range c.Objects() {
			counts[string(obj.Kind())]++
		}
		kinds := make([]string, 0, len(counts))
		for k := range counts {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)

		fmt.Fprintf(out, "%-20s %-9s %4d object(s)\n", c.Name(), state, len(c.Objects()))
		for _, k := range kinds {
			fmt.Fprintf(out, "  %-18s %4d\n", k, counts[k])
		}
		total += len(c.Objects())
	}
	fmt.Fprintf(out, "Total: %d object(s)\n", total)
	return nil
}

var recoverCmd = &cobra.Command{
	Use:   "recover [file]",
	Short: "Restore a document from its autosave snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := recoverDocument(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recovered %s from %s\n", args[0], world.AutoSavePath(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recoverCmd)
}

// recoverDocument overwrites path with its autosave snapshot and removes
// the snapshot.
func recoverDocument(path string) error {
	snapshot := world.AutoSavePath(path)
	w, err := readDocument(snapshot)
	if err != nil {
		return err
	}
	if err := w.SaveFile(path); err != nil {
		return err
	}
	if err := os.Remove(snapshot); err != nil {
		return fmt.Errorf("recovered, but failed to remove '%s': %w", snapshot, err)
	}
	return nil
}
