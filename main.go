package main

import (
	"fmt"
	"os"

	"github.com/nconklindev/stockcell/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Handle --version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("stockcell %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		os.Exit(0)
	}

	cmd.Execute(cmd.BuildInfo{Version: version, Commit: commit, Date: date})
}
