package middleware

import (
	"context"

	"github.com/easi-app/easi-server/internal/domain"
	"github.com/easi-app/easi-server/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden if the caller is not a governance admin.
// Use in REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.PrincipalFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireTRBAdmin is RequireAdmin for technical review board admins.
func RequireTRBAdmin(ctx context.Context) error {
	if _, ok := ctxutil.PrincipalFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsTRBAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
