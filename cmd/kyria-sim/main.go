// Command kyria-sim exercises the Kyria keymap on the host.
package main

import (
	"os"

	"kyria-go/cmd/kyria-sim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
