package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setmCmd = &cobra.Command{
	Use:   "setm <base> <sub> <value>",
	Short: "Set the value of multiple tree nodes and save",
	Long: `Set the value of every node matched by interpreting <sub> as a path
expression relative to each node matching <base>, then write the changes
back to disk. Pass an empty <sub> ("") to modify the base matches
themselves.

Example:
  augedit setm /files/etc/hosts '*/ipaddr' 192.168.1.1`,
	Args: cobra.ExactArgs(3),
	RunE: runSetm,
}

func runSetm(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	n, err := s.aug.Setm(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Printf("modified %d nodes\n", n)
	return s.save()
}
