package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// maxBodySize caps request bodies.
const maxBodySize = 1 << 20

var requiredFields = validators.NewRequiredFieldsValidator()

// decodeBody decodes the JSON object in the request body into dst after
// checking that every field in required is present and non-blank.
func decodeBody(r *http.Request, dst any, required ...string) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if len(required) > 0 {
		if len(bytes.TrimSpace(body)) == 0 {
			return validators.ErrFieldsMissing
		}
		payload := map[string]any{}
		if err = render.DecodeJSON(bytes.NewReader(body), &payload); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		if err = requiredFields.Validate(r.Context(), payload, required...); err != nil {
			return err
		}
	}

	if err = render.DecodeJSON(bytes.NewReader(body), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// pageRequest reads the offset and limit query parameters.
func pageRequest(r *http.Request) models.PageRequest {
	q := r.URL.Query()
	return models.NewPageRequest(q.Get("offset"), q.Get("limit"))
}

// requester returns the claims the auth middleware stored in the context.
func requester(r *http.Request) (models.Claims, error) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		return models.Claims{}, ErrEmptyAuthorizationHeader
	}
	return claims, nil
}
