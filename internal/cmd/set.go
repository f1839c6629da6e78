package cmd

import "github.com/spf13/cobra"

var setCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set the value of a tree node and save",
	Long: `Set the value of the node matched by a path expression, creating
intermediate nodes as needed, then write the change back to disk.

The expression must not match more than one existing node.

Example:
  augedit set /files/etc/hosts/1/ipaddr 127.0.0.1`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var clearCmd = &cobra.Command{
	Use:   "clear <path>",
	Short: "Clear the value of a tree node and save",
	Long: `Remove the value of the node matched by a path expression, leaving
the node itself in place, then write the change back to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runClear,
}

func runSet(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.aug.Set(args[0], args[1]); err != nil {
		return err
	}
	return s.save()
}

func runClear(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.aug.Clear(args[0]); err != nil {
		return err
	}
	return s.save()
}
