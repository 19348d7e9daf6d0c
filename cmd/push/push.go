package push

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/reocities/reocities-cli/cmd/util"
	"github.com/reocities/reocities-cli/pkg/sync"
)

// New creates a new `push` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "push [directory]",
		Short: "Upload an entire directory to your site",
		Long: "Upload every file under the given directory (default: the\n" +
			"current directory), skipping anything matched by the " +
			"directory's .gitignore.",
		Args: cobra.MaximumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := Main(dir); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

// Main pushes dir to the site with the stored credential.
func Main(dir string) error {
	client, err := util.AuthenticatedClient()
	if err != nil {
		return err
	}
	return sync.Push(client, dir, os.Stdout)
}
