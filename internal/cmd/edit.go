package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Remove tree nodes and save",
	Long: `Remove every node matched by a path expression, together with all
its descendants, then write the changes back to disk. Prints the number of
entries removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

var mvCmd = &cobra.Command{
	Use:   "mv <src> <dst>",
	Short: "Move a tree node and save",
	Long: `Move the node matched by <src> to <dst>, then write the changes
back to disk. <src> must match exactly one node. If <dst> exists, it and its
descendants are replaced; otherwise it is created along with any missing
ancestors.`,
	Args: cobra.ExactArgs(2),
	RunE: runMv,
}

var insCmd = &cobra.Command{
	Use:   "ins <label> <before|after> <path>",
	Short: "Insert a sibling node and save",
	Long: `Insert a new node with the given label immediately before or after
the single node matched by <path>, then write the changes back to disk.

The label must be plain: no '/', no '*', no trailing bracketed index.

Example:
  augedit ins alias before /files/etc/hosts/1/canonical`,
	Args: cobra.ExactArgs(3),
	RunE: runIns,
}

func runRm(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	n, err := s.aug.Remove(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("removed %d entries\n", n)
	return s.save()
}

func runMv(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.aug.Move(args[0], args[1]); err != nil {
		return err
	}
	return s.save()
}

func runIns(cmd *cobra.Command, args []string) error {
	before, err := parseWhere(args[1])
	if err != nil {
		return err
	}

	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.aug.Insert(args[2], args[0], before); err != nil {
		return err
	}
	return s.save()
}

func parseWhere(s string) (before bool, err error) {
	switch s {
	case "before":
		return true, nil
	case "after":
		return false, nil
	}
	return false, fmt.Errorf("expected \"before\" or \"after\", got %q", s)
}
