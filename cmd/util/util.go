package util

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/reocities/reocities-cli/pkg/api"
	"github.com/reocities/reocities-cli/pkg/config"
	"github.com/reocities/reocities-cli/pkg/errors"
)

// HandleFatalError prints err in the friendliest form available and exits.
// Friendly errors are shown verbatim since their message is written for the
// user; everything else gets an "Error:" prefix.
func HandleFatalError(err error) {
	if friendly, ok := err.(errors.FriendlyError); ok {
		fmt.Fprintln(os.Stderr, friendly.FriendlyMessage())
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}

// HandlePanic reports unexpected panics as ordinary errors instead of
// dumping a raw stack trace on users. It's meant to be deferred from main.
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}

	log.Debugf("Panic stack trace:\n%s", debug.Stack())
	fmt.Fprintf(os.Stderr, "Unexpected error: %v\n"+
		"Run with REOCITIES_LOG_VERBOSE=true for more details.\n", r)
	os.Exit(1)
}

// AuthenticatedClient builds an API client from the stored credential.
func AuthenticatedClient() (*api.Client, error) {
	key, err := config.Load()
	if err != nil {
		if _, ok := err.(errors.FileNotFound); ok {
			return nil, errors.NotLoggedIn{}
		}
		return nil, err
	}
	return api.New(key), nil
}
