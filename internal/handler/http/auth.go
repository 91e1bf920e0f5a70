package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeBody(r, &user, validators.CreateUserFields...); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, token, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", registeredUser.ID).Msg("user registered")

	utils.WriteJSON(w, r, models.SignupResponse{
		Message: app.MsgUserCreated,
		Token:   token.String(),
		UserID:  registeredUser.ID,
		RoleID:  registeredUser.RoleID,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeBody(r, &credentials, validators.LoginFields...); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, models.LoginResponse{
		UserIdentity: user.ID,
		Token:        token.String(),
		ExpiresIn:    humanDuration(h.tokenDuration),
	}, http.StatusOK)
}

// logout is a no-op on the server: tokens are stateless and expire on
// their own.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, r, app.MsgUserLoggedOut, http.StatusOK)
}

// humanDuration renders whole days as "2 days" and anything else with
// time.Duration's own format.
func humanDuration(d time.Duration) string {
	const day = 24 * time.Hour
	switch {
	case d == day:
		return "1 day"
	case d > 0 && d%day == 0:
		return fmt.Sprintf("%d days", d/day)
	default:
		return d.String()
	}
}
