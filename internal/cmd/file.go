package cmd

import (
	"errors"
	"fmt"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/spf13/cobra"
	"github.com/tradej/go-augeas"
)

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Show the host file backing a tree node",
	Long: `Print the file on disk that the node matched by a path expression
was loaded from. The span record names the file when one exists; otherwise
the /files prefix of the path is resolved beneath the filesystem root.

Example:
  augedit file /files/etc/hosts/1/ipaddr`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func runFile(cmd *cobra.Command, args []string) error {
	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.close()

	sp, err := s.aug.Span(args[0])
	if err == nil && sp.Filename != "" {
		fmt.Println(sp.Filename)
		return nil
	}
	if err != nil && !errors.Is(err, augeas.ErrNoSpan) {
		return err
	}

	f, err := backingFile(s, args[0])
	if err != nil {
		return err
	}
	fmt.Println(f)
	return nil
}

// backingFile resolves a /files/... path to a host path under the
// filesystem root without letting the relative part escape it.
func backingFile(s *session, path string) (string, error) {
	rel, ok := strings.CutPrefix(path, "/files/")
	if !ok {
		return "", fmt.Errorf("%s is not beneath /files", path)
	}
	// Drop the node segments below the file itself, e.g. "1/ipaddr"
	// after "etc/hosts": keep joining while a matching file node exists.
	root := rootFlags.root
	if root == "" {
		root = s.cfg.Root
	}
	if root == "" {
		root = "/"
	}

	segments := strings.Split(rel, "/")
	for i := len(segments); i > 0; i-- {
		candidate := "/files/" + strings.Join(segments[:i], "/")
		if v, ok, _ := s.aug.Get("/augeas" + candidate + "/path"); ok && v == candidate {
			return securejoin.SecureJoin(root, strings.Join(segments[:i], "/"))
		}
	}
	return securejoin.SecureJoin(root, rel)
}
