// augedit edits configuration files through the Augeas tree.
package main

import "github.com/tradej/go-augeas/internal/cmd"

func main() {
	cmd.Execute()
}
