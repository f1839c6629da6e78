package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match <pathexpr>",
	Short: "List the nodes matching a path expression",
	Long: `List every node matched by a path expression, one per line, with
its value when it has one. The printed paths are fully qualified: each
matches exactly one node.

Example:
  augedit match '/files/etc/hosts/*/ipaddr'`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	matches, err := s.aug.Match(args[0])
	if err != nil {
		return err
	}
	for _, m := range matches {
		value, ok, err := s.aug.Get(m)
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("%s = %s\n", pathStyle.Render(m), value)
		} else {
			fmt.Printf("%s %s\n", pathStyle.Render(m), dimStyle.Render("(none)"))
		}
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d matches", len(matches))))
	return nil
}
