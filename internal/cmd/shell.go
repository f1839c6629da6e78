package cmd

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"github.com/tradej/go-augeas/internal/tree"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit the tree interactively",
	Long: `Open one handle and read commands from standard input, one per
line. Words are split shell-style, so values with spaces can be quoted.
Unlike the one-shot commands, nothing is written to disk until "save".

Type "help" inside the shell for the command list.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

// shellVerb is one REPL command. argc < 0 means at least -argc-1 arguments.
type shellVerb struct {
	usage string
	argc  int
	run   func(s *session, args []string) error
}

var shellVerbs map[string]shellVerb

func init() {
	// Filled here rather than in the literal to avoid an
	// initialization cycle through the help verb.
	shellVerbs = map[string]shellVerb{
		"get":      {"get <path>", 1, shellGet},
		"set":      {"set <path> <value>", 2, shellSet},
		"clear":    {"clear <path>", 1, shellClear},
		"setm":     {"setm <base> <sub> <value>", 3, shellSetm},
		"rm":       {"rm <path>", 1, shellRm},
		"mv":       {"mv <src> <dst>", 2, shellMv},
		"ins":      {"ins <label> <before|after> <path>", 3, shellIns},
		"match":    {"match <pathexpr>", 1, shellMatch},
		"span":     {"span <path>", 1, shellSpan},
		"defvar":   {"defvar <name> <expr>", 2, shellDefvar},
		"undefvar": {"undefvar <name>", 1, shellUndefvar},
		"defnode":  {"defnode <name> <expr> <value>", 3, shellDefnode},
		"dump":     {"dump <pathexpr>", 1, shellDump},
		"save":     {"save", 0, func(s *session, _ []string) error { return s.save() }},
		"load":     {"load", 0, func(s *session, _ []string) error { return s.aug.Load() }},
		"transform": {"transform <lens> <incl>...", -3,
			func(s *session, args []string) error {
				return s.aug.AddTransform(args[0], "", args[1:])
			}},
		"clear-transforms": {"clear-transforms", 0,
			func(s *session, _ []string) error { return s.aug.ClearTransforms() }},
		"help": {"help", 0, shellHelp},
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.close()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("augedit> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		words, err := shellquote.Split(scanner.Text())
		if err != nil {
			fmt.Println(errStyle.Render("parse error: " + err.Error()))
			continue
		}
		if len(words) == 0 {
			continue
		}
		if words[0] == "quit" || words[0] == "exit" {
			return nil
		}

		if err := dispatch(s, words[0], words[1:]); err != nil {
			fmt.Println(errStyle.Render(err.Error()))
		}
	}
}

func dispatch(s *session, verb string, args []string) error {
	v, ok := shellVerbs[verb]
	if !ok {
		return fmt.Errorf("unknown command %q, try \"help\"", verb)
	}
	if v.argc >= 0 && len(args) != v.argc {
		return fmt.Errorf("usage: %s", v.usage)
	}
	if v.argc < 0 && len(args) < -v.argc-1 {
		return fmt.Errorf("usage: %s", v.usage)
	}
	return v.run(s, args)
}

func shellGet(s *session, args []string) error {
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

func shellSet(s *session, args []string) error {
	return s.aug.Set(args[0], args[1])
}

func shellClear(s *session, args []string) error {
	return s.aug.Clear(args[0])
}

func shellSetm(s *session, args []string) error {
	n, err := s.aug.Setm(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Printf("modified %d nodes\n", n)
	return nil
}

func shellRm(s *session, args []string) error {
	n, err := s.aug.Remove(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("removed %d entries\n", n)
	return nil
}

func shellMv(s *session, args []string) error {
	return s.aug.Move(args[0], args[1])
}

func shellIns(s *session, args []string) error {
	before, err := parseWhere(args[1])
	if err != nil {
		return err
	}
	return s.aug.Insert(args[2], args[0], before)
}

func shellMatch(s *session, args []string) error {
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
			fmt.Println(pathStyle.Render(m))
		}
	}
	return nil
}

func shellSpan(s *session, args []string) error {
	sp, err := s.aug.Span(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s label %d..%d value %d..%d span %d..%d\n",
		sp.Filename,
		sp.LabelStart, sp.LabelEnd,
		sp.ValueStart, sp.ValueEnd,
		sp.SpanStart, sp.SpanEnd)
	return nil
}

func shellDefvar(s *session, args []string) error {
	n, err := s.aug.DefVar(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("$%s bound to %d nodes\n", args[0], n)
	return nil
}

func shellUndefvar(s *session, args []string) error {
	return s.aug.UndefVar(args[0])
}

func shellDefnode(s *session, args []string) error {
	n, err := s.aug.DefNode(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Printf("$%s bound to %d nodes\n", args[0], n)
	return nil
}

func shellDump(s *session, args []string) error {
	lines, err := tree.Flatten(s.aug, args[0])
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Println(l)
	}
	return nil
}

func shellHelp(s *session, args []string) error {
	usages := make([]string, 0, len(shellVerbs))
	for _, v := range shellVerbs {
		usages = append(usages, v.usage)
	}
	sort.Strings(usages)
	fmt.Println(strings.Join(usages, "\n"))
	fmt.Println("quit")
	return nil
}
