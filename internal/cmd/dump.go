package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tradej/go-augeas/internal/tree"
)

var dumpFlat bool

var dumpCmd = &cobra.Command{
	Use:   "dump [pathexpr]",
	Short: "Dump a subtree as JSON",
	Long: `Render every node matched by a path expression, and everything
below it, as a JSON document that preserves tree order. Nodes that have both
a value and children carry the value under the "#value" key.

The expression defaults to /files.

Example:
  augedit dump /files/etc/hosts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpFlat, "flat", false, "print one path = value line per node instead of JSON")
}

func runDump(cmd *cobra.Command, args []string) error {
	path := "/files"
	if len(args) == 1 {
		path = args[0]
	}

	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	if dumpFlat {
		lines, err := tree.Flatten(s.aug, path)
		if err != nil {
			return err
		}
		for _, l := range lines {
			fmt.Println(l)
		}
		return nil
	}

	t, err := tree.Dump(s.aug, path)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
