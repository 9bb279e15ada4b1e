// Package guard holds the navigation predicates gating protected commands.
// Each check runs fresh on every invocation against the current session;
// decisions are never cached.
package guard

import (
	"github.com/neofinance/neofin/pkg/errors"
	"github.com/neofinance/neofin/pkg/session"
)

// RequireAuth passes iff the session carries an access token
func RequireAuth(mgr *session.Manager) error {
	sess, ok := mgr.Current()
	if !ok || !sess.LoggedIn() {
		return errors.AuthError("Not logged in")
	}
	return nil
}

// RequireStaff passes iff RequireAuth passes and the session is staff
func RequireStaff(mgr *session.Manager) error {
	if err := RequireAuth(mgr); err != nil {
		return err
	}

	sess, _ := mgr.Current()
	if !sess.IsStaff {
		return errors.ForbiddenError()
	}
	return nil
}
