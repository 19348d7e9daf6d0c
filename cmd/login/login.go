package login

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reocities/reocities-cli/cmd/util"
	"github.com/reocities/reocities-cli/pkg/api"
	"github.com/reocities/reocities-cli/pkg/config"
	"github.com/reocities/reocities-cli/pkg/errors"
)

// Mocked out for unit testing.
var (
	newClient      = api.New
	saveCredential = config.Save
)

// New creates a new `login` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "login <api-key>",
		Short: "Log in with your Reocities API key",
		Long: "Verify the given API key against the Reocities API and store\n" +
			"it for future commands. Your key is available in your site's " +
			"settings page.",
		Args: cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			if err := Main(args[0]); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

// Main verifies the API key against the service, and only persists it if
// the service accepts it.
func Main(apiKey string) error {
	client := newClient(apiKey)

	pp := util.NewProgressPrinter(os.Stdout, "Verifying API key")
	go pp.Run()
	resp, err := client.List("", false)
	pp.Stop()

	if err != nil {
		return errors.WithContext(err, "connect with API key")
	}
	if !resp.Success || resp.Error != "" {
		return errors.NewFriendlyError(
			"The Reocities API rejected the key: %s", resp.Reason())
	}

	if err := saveCredential(apiKey); err != nil {
		return errors.WithContext(err, "save credential")
	}

	fmt.Println("Successfully logged in!")
	return nil
}
