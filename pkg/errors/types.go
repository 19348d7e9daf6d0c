package errors

import (
	"fmt"
)

// FileNotFound represents when we were unable to access a file
// because the path didn't exist.
type FileNotFound struct {
	Path string
}

func (err FileNotFound) Error() string {
	return fmt.Sprintf("%q does not exist", err.Path)
}

// NotLoggedIn represents when a command requires a stored API key, but none
// exists.
type NotLoggedIn struct{}

func (err NotLoggedIn) Error() string {
	return err.FriendlyMessage()
}

func (err NotLoggedIn) FriendlyMessage() string {
	return "Not logged in. Please run `reocities login <your-api-key>` first."
}
