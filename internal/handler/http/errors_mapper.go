package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
)

// errorMapping binds a sentinel error to the status and message sent to the
// client.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is matched in order; the first entry err wraps wins.
var errorMappings = []errorMapping{
	// transport
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidID, http.StatusBadRequest, app.MsgInvalidID},
	{ErrTooManyRequests, http.StatusTooManyRequests, app.MsgTooManyRequests},

	// validation
	{validators.ErrFieldsMissing, http.StatusForbidden, app.MsgFieldsMissing},
	{validators.ErrEmptyTitle, http.StatusForbidden, app.MsgFieldsMissing},
	{validators.ErrEmptyContent, http.StatusForbidden, app.MsgFieldsMissing},
	{validators.ErrEmptyName, http.StatusForbidden, app.MsgFieldsMissing},
	{validators.ErrEmptyPassword, http.StatusForbidden, app.MsgFieldsMissing},
	{service.ErrInvalidDataProvided, http.StatusForbidden, app.MsgFieldsMissing},
	{validators.ErrInvalidAccess, http.StatusForbidden, app.MsgInvalidAccess},
	{validators.ErrInvalidEmail, http.StatusForbidden, app.MsgInvalidEmail},
	{validators.ErrInvalidRoleID, http.StatusForbidden, app.MsgInvalidRoleID},
	{validators.ErrPasswordTooLong, http.StatusForbidden, app.MsgPasswordTooLong},
	{validators.ErrNoFieldsToUpdate, http.StatusForbidden, app.MsgNoFieldsToUpdate},

	// authentication
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenRequired},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgInvalidToken},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgInvalidToken},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgInvalidToken},
	{service.ErrAuthenticationFailed, http.StatusUnauthorized, app.MsgAuthenticationFailed},

	// permission
	{ErrAdminOnly, http.StatusForbidden, app.MsgNotPermitted},
	{service.ErrRoleChangeForbidden, http.StatusForbidden, app.MsgNotPermitted},
	{policy.ErrDocumentIsPrivate, http.StatusForbidden, app.MsgDocumentIsPrivate},
	{policy.ErrNotDocumentOwner, http.StatusForbidden, app.MsgNotDocumentOwner},
	{policy.ErrAdminRoleImmutable, http.StatusForbidden, app.MsgNotPermitted},
	{policy.ErrUserAccessDenied, http.StatusForbidden, app.MsgNotPermitted},

	// not found
	{policy.ErrDocumentNotFound, http.StatusNotFound, app.MsgDocumentNotFound},
	{policy.ErrDocumentToChangeNotFound, http.StatusNotFound, app.MsgDocumentToChangeNotFound},
	{policy.ErrRoleNotFound, http.StatusNotFound, app.MsgRoleNotFound},
	{policy.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrDocumentNotFound, http.StatusNotFound, app.MsgDocumentNotFound},
	{store.ErrRoleNotFound, http.StatusNotFound, app.MsgRoleDoesNotExist},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrReferenceNotFound, http.StatusNotFound, app.MsgReferenceNotFound},

	// conflict
	{store.ErrUserAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},
	{store.ErrRoleAlreadyExists, http.StatusConflict, app.MsgRoleAlreadyExists},
	{store.ErrDocumentAlreadyExists, http.StatusConflict, app.MsgDocumentAlreadyExists},
	{store.ErrRoleInUse, http.StatusConflict, app.MsgRoleInUse},
}

// statusFromError returns the status and client message for err. Unknown
// errors are reported as 500 without details.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and answers with {"message": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, r, message, status)
}
