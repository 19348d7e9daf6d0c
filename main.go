package main

import (
	"github.com/reocities/reocities-cli/cmd"
	"github.com/reocities/reocities-cli/cmd/util"
)

func main() {
	defer util.HandlePanic()
	cmd.Execute()
}
