package logout

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reocities/reocities-cli/cmd/util"
	"github.com/reocities/reocities-cli/pkg/config"
	"github.com/reocities/reocities-cli/pkg/errors"
)

// New creates a new `logout` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		Run: func(_ *cobra.Command, _ []string) {
			if err := Main(); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

// Main removes the stored API key. Logging out while already logged out
// isn't an error -- there's just nothing to do.
func Main() error {
	err := config.Clear()
	if _, ok := err.(errors.FileNotFound); ok {
		fmt.Println("Not currently logged in")
		return nil
	}
	if err != nil {
		return errors.WithContext(err, "remove credential")
	}

	fmt.Println("Logged out successfully")
	return nil
}
