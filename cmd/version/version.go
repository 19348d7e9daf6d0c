package version

import (
	"fmt"
	"os"

	goversion "github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reocities/reocities-cli/cmd/util"
	"github.com/reocities/reocities-cli/pkg/api"
	"github.com/reocities/reocities-cli/pkg/config"
	"github.com/reocities/reocities-cli/pkg/errors"
	"github.com/reocities/reocities-cli/pkg/version"
)

// New creates a new `version` command.
func New() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the Reocities CLI version",
		Run: func(_ *cobra.Command, _ []string) {
			if err := run(check); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().BoolVar(&check, "check", false,
		"Check whether a newer CLI release is available.")
	return cmd
}

func run(check bool) error {
	fmt.Printf("Reocities CLI version %s\n", version.Version)
	if !check {
		return nil
	}

	if version.Version == version.EmptyValue {
		return errors.NewFriendlyError("This binary wasn't built with a " +
			"release version, so there's nothing to compare against.")
	}

	// The version endpoint doesn't require authentication, so a missing
	// credential is fine here.
	key, err := config.Load()
	if err != nil {
		log.WithError(err).Debug("No stored credential. Checking anonymously")
		key = ""
	}
	client := api.New(key)

	pp := util.NewProgressPrinter(os.Stdout, "Checking for newer releases")
	go pp.Run()
	resp, err := client.ServiceVersion()
	pp.Stop()

	if err != nil {
		return errors.WithContext(err, "check latest release")
	}
	if !resp.Success {
		return errors.New("check latest release: %s", resp.Reason())
	}

	var latest api.ServiceVersion
	if err := resp.Decode(&latest); err != nil {
		return errors.WithContext(err, "parse latest release")
	}

	newer, err := newerRelease(version.Version, latest.Version)
	if err != nil {
		return err
	}
	if !newer {
		fmt.Println("Your CLI is up to date.")
		return nil
	}
	fmt.Printf("A newer release is available: %s\n", latest.Version)
	return nil
}

// newerRelease returns whether latest is strictly newer than local,
// comparing release versions semantically rather than as strings.
func newerRelease(local, latest string) (bool, error) {
	localVersion, err := goversion.NewVersion(local)
	if err != nil {
		return false, errors.WithContext(err, "parse local version")
	}
	latestVersion, err := goversion.NewVersion(latest)
	if err != nil {
		return false, errors.WithContext(err, "parse latest version")
	}
	return localVersion.LessThan(latestVersion), nil
}
