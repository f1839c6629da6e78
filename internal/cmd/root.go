// Package cmd provides the CLI commands for augedit.
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "augedit",
	Short: "Edit configuration files through Augeas",
	Long: `augedit edits configuration files by manipulating the Augeas tree.

Augeas parses configuration files into a tree under /files. Changes made to
the tree are written back to the original files, preserving comments and
formatting. Mutating commands save automatically; pass --noop to see what
would change without touching any file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootFlags.verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// rootFlags holds the persistent flags shared by every command.
var rootFlags struct {
	root       string
	loadPath   string
	configFile string
	verbose    bool

	backup     bool
	newFile    bool
	typeCheck  bool
	noStdinc   bool
	noop       bool
	noLoad     bool
	noAutoload bool
	span       bool
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&rootFlags.root, "root", "r", "", "use ROOT as the filesystem root (default: $AUGEAS_ROOT or /)")
	pf.StringVarP(&rootFlags.loadPath, "loadpath", "L", "", "colon-separated list of extra lens directories")
	pf.StringVarP(&rootFlags.configFile, "config", "c", "", "augedit config file (default: ~/.config/augedit/config.toml)")
	pf.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "enable debug logging")

	pf.BoolVarP(&rootFlags.backup, "backup", "b", false, "preserve originals of changed files as .augsave")
	pf.BoolVarP(&rootFlags.newFile, "new", "n", false, "write changes to .augnew files, leave originals untouched")
	pf.BoolVar(&rootFlags.typeCheck, "typecheck", false, "typecheck lenses (expensive)")
	pf.BoolVar(&rootFlags.noStdinc, "nostdinc", false, "do not search the standard lens directories")
	pf.BoolVar(&rootFlags.noop, "noop", false, "make save a no-op, only recording what would change")
	pf.BoolVar(&rootFlags.noLoad, "noload", false, "do not load any files on startup")
	pf.BoolVar(&rootFlags.noAutoload, "noautoload", false, "do not autoload modules from the search path")
	pf.BoolVarP(&rootFlags.span, "span", "S", false, "track position of nodes in the source files")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(setmCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(mvCmd)
	rootCmd.AddCommand(insCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(spanCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)
}
