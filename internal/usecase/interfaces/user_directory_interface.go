package interfaces

import "context"

// IUserDirectory resolves display information for back-office users.
//
// DisplayNameOf returns an empty string (not an error) for an unknown user id;
// audit entries written by since-removed accounts must stay readable.
type IUserDirectory interface {
	DisplayNameOf(ctx context.Context, userID string) (string, error)
}
