package main

import (
	"os"

	Logger "github.com/ajju-1209/hostel-management/pkg/logger"
)

func main() {
	root, app := newRootCmd()
	if err := execute(root, app); err != nil {
		Logger.Error("admin command failed: %v", err)
		Logger.Sync()
		os.Exit(1)
	}
}
