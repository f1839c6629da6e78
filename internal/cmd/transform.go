package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var transformFlags struct {
	name string
	excl []string
}

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Manage the transforms controlling what gets loaded",
}

var transformAddCmd = &cobra.Command{
	Use:   "add <lens> <incl>...",
	Short: "Register a lens for a set of files and load them",
	Long: `Register a transform binding a lens to the files matched by one or
more include glob patterns, then reload the tree.

The transform name defaults to the lens name without extension.

Example:
  augedit --noautoload transform add Hosts.lns /etc/hosts`,
	Args: cobra.MinimumNArgs(2),
	RunE: runTransformAdd,
}

var transformClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all transforms and reload",
	Long: `Remove every transform beneath /augeas/load and reload, leaving
nothing under /files.`,
	Args: cobra.NoArgs,
	RunE: runTransformClear,
}

func init() {
	transformAddCmd.Flags().StringVar(&transformFlags.name, "name", "", "transform name (default: derived from the lens)")
	transformAddCmd.Flags().StringArrayVar(&transformFlags.excl, "excl", nil, "glob pattern of files to exclude (repeatable)")
	transformCmd.AddCommand(transformAddCmd)
	transformCmd.AddCommand(transformClearCmd)
}

func runTransformAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	lens, incl := args[0], args[1:]
	if err := s.aug.AddTransform(lens, transformFlags.name, incl, transformFlags.excl...); err != nil {
		return err
	}
	if err := s.aug.Load(); err != nil {
		return err
	}
	if err := reportLoadErrors(s); err != nil {
		return err
	}

	loaded, err := s.aug.Match("/files//*[count(*)=0]")
	if err != nil {
		return err
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("loaded %d nodes", len(loaded))))
	return nil
}

func runTransformClear(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.aug.ClearTransforms(); err != nil {
		return err
	}
	return s.aug.Load()
}
