package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces token authentication.
//
// The "Authorization" header may carry either a bare token or
// "Bearer <token>". On success the decoded claims are stored in the request
// context (see [utils.GetClaimsFromContext]).
//
// The middleware answers 401 when:
//   - the header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header cannot be parsed ([utils.ErrInvalidAuthorizationHeader]);
//   - the token is expired or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseAuthorizationHeader(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		claims, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Int64("user_id", claims.UserID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

// adminOnly lets through requesters whose role is the admin role. It must
// run after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.GetClaimsFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		isAdmin, err := h.services.UserService.IsAdmin(r.Context(), claims)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !isAdmin {
			writeError(w, r, ErrAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}
