package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write pending tree changes back to disk",
	Long: `Write all pending changes back to disk. Only files whose tree
content changed are written. Mostly useful from the shell or after commands
run with --noload; the one-shot editing commands save on their own.`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Reload files into the tree",
	Long: `Discard everything under /files and re-parse files according to the
transforms registered under /augeas/load. Prints any per-file load errors
recorded by the library.`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func runSave(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()
	return s.save()
}

func runLoad(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.aug.Load(); err != nil {
		return err
	}
	return reportLoadErrors(s)
}

// reportLoadErrors prints the per-file errors the library records under
// /augeas//error after a load.
func reportLoadErrors(s *session) error {
	errors, err := s.aug.Match("/augeas//error")
	if err != nil {
		return err
	}
	for _, p := range errors {
		msg, _, err := s.aug.Get(p + "/message")
		if err != nil {
			return err
		}
		fmt.Println(errStyle.Render(fmt.Sprintf("%s: %s", p, msg)))
	}
	if len(errors) > 0 {
		return fmt.Errorf("%d files failed to load", len(errors))
	}
	return nil
}
