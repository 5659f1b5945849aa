package service

import (
	"context"

	"scholarhub/internal/ctxdata"
	"scholarhub/internal/errdefs"
)

// requireSelf rejects callers whose authenticated email does not match the
// email they are operating on. Self-scoped routes re-check this on every
// request rather than trusting anything cached client-side.
func requireSelf(ctx context.Context, email string) error {
	authed, ok := ctxdata.GetUserEmail(ctx)
	if !ok {
		return errdefs.ErrAuthentication
	}
	if authed != email {
		return errdefs.ErrPermissionDenied
	}
	return nil
}
