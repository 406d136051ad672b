// charscan waits for strings and parses numbers in character streams from
// files, sockets, message buses and terminals.
package main

import (
	"os"

	"github.com/arloliu/go-charstream/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
