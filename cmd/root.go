package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	deleteCmd "github.com/reocities/reocities-cli/cmd/delete"
	"github.com/reocities/reocities-cli/cmd/list"
	"github.com/reocities/reocities-cli/cmd/login"
	"github.com/reocities/reocities-cli/cmd/logout"
	"github.com/reocities/reocities-cli/cmd/push"
	"github.com/reocities/reocities-cli/cmd/upload"
	"github.com/reocities/reocities-cli/cmd/util"
	versionCmd "github.com/reocities/reocities-cli/cmd/version"
)

// verboseLogKey is the environment variable used to enable verbose logging.
// When it's set to `true`, Debug events are logged, rather than just Info and
// above.
const verboseLogKey = "REOCITIES_LOG_VERBOSE"

const banner = `
 ____                _ _   _
|  _ \ ___  ___   ___(_) |_(_) ___  ___
| |_) / _ \/ _ \ / __| | __| |/ _ \/ __|
|  _ <  __/ (_) | (__| | |_| |  __/\__ \
|_| \_\___|\___/ \___|_|\__|_|\___||___/

Reocities CLI - Manage your site from the command line
`

// Execute runs the main CLI process.
func Execute() {
	if os.Getenv(verboseLogKey) == "true" {
		log.SetLevel(log.DebugLevel)
	}

	rootCmd := &cobra.Command{
		Use:          "reocities",
		Short:        "Manage your Reocities site from the command line.",
		SilenceUsage: true,

		// The call to rootCmd.Execute prints the error, so we silence errors
		// here to avoid double printing.
		SilenceErrors: true,

		// Invoking the bare binary prints the banner along with usage help.
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Print(banner, "\n")
			_ = cmd.Help()
		},
	}
	rootCmd.AddCommand(
		deleteCmd.New(),
		list.New(),
		login.New(),
		logout.New(),
		push.New(),
		upload.New(),
		versionCmd.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		util.HandleFatalError(err)
	}
}
