package main

import (
	"brstats/cmd/brstats-cli/cmd"
)

func main() {
	cmd.Execute()
}
