package domain

import "strings"

// CallerIdentity is the user a request acts on behalf of. It is resolved by
// the session middleware and handed to every service call explicitly.
type CallerIdentity struct {
	UserID string
}

func (c CallerIdentity) Authenticated() bool {
	return strings.TrimSpace(c.UserID) != ""
}

func (c CallerIdentity) Require() error {
	if !c.Authenticated() {
		return ErrUnauthenticated
	}
	return nil
}
