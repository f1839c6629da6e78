package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print the value of a tree node",
	Long: `Print the value of the node matched by a path expression.

The expression must match at most one node. A node that does not exist, or
exists without a value, prints "(none)".

Example:
  augedit get /files/etc/hosts/1/ipaddr`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	value, ok, err := s.aug.Get(args[0])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(dimStyle.Render("(none)"))
		return nil
	}
	fmt.Println(value)
	return nil
}
