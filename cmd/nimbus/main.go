package main

import (
	"os"

	"nimbus/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
