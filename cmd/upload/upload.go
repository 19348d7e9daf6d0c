package upload

import (
	"fmt"
	"path/filepath"

	"github.com/buger/goterm"
	"github.com/spf13/cobra"

	"github.com/reocities/reocities-cli/cmd/util"
	"github.com/reocities/reocities-cli/pkg/api"
)

var (
	successMark = goterm.Color("✓", goterm.GREEN)
	failureMark = goterm.Color("✗", goterm.RED)
)

// New creates a new `upload` command.
func New() *cobra.Command {
	var folder string
	cmd := &cobra.Command{
		Use:   "upload <files...>",
		Short: "Upload individual files to your site",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			if err := Main(args, folder); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().StringVar(&folder, "folder", "", "Target folder on the site.")
	return cmd
}

// Main uploads each file in turn. A failed upload is reported and doesn't
// stop the remaining files.
func Main(paths []string, folder string) error {
	client, err := util.AuthenticatedClient()
	if err != nil {
		return err
	}

	for _, path := range paths {
		name := filepath.Base(path)

		resp, err := client.UploadSingle(path, folder, true)
		if err != nil {
			fmt.Printf("%s Error uploading %s: %s\n", failureMark, name, err)
			continue
		}
		if !resp.Success {
			fmt.Printf("%s Failed to upload %s: %s\n", failureMark, name, resp.Reason())
			continue
		}

		var uploaded api.UploadedFile
		if err := resp.Decode(&uploaded); err != nil || uploaded.Path == "" {
			// The server accepted the file but didn't echo back its
			// metadata. Still a success.
			fmt.Printf("%s Uploaded %s\n", successMark, name)
			continue
		}
		fmt.Printf("%s Uploaded %s to %s\n", successMark, uploaded.Filename, uploaded.Path)
	}
	return nil
}
