package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var spanCmd = &cobra.Command{
	Use:   "span <path>",
	Short: "Show where a node sits in its source file",
	Long: `Print the source file of the node matched by a path expression and
the byte offsets of its label, value and whole extent. Position tracking is
enabled automatically for this command.

Example:
  augedit span /files/etc/hosts/1/ipaddr`,
	Args: cobra.ExactArgs(1),
	RunE: runSpan,
}

func runSpan(cmd *cobra.Command, args []string) error {
	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.close()

	sp, err := s.aug.Span(args[0])
	if err != nil {
		return err
	}
	fmt.Println(pathStyle.Render(sp.Filename))
	fmt.Printf("label %d..%d  value %d..%d  span %d..%d\n",
		sp.LabelStart, sp.LabelEnd,
		sp.ValueStart, sp.ValueEnd,
		sp.SpanStart, sp.SpanEnd)
	return nil
}
