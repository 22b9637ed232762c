package main

import (
	"github.com/sphinxcode/archon-status/cmd"
)

var (
	Version string
	Commit  string
	BuiltAt string
)

func main() {
	cmd.Version = Version
	cmd.Commit = Commit
	cmd.BuiltAt = BuiltAt

	cmd.Execute()
}
