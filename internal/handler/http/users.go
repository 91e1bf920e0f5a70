package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/jinzhu/copier"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.UserService.ListUsers(r.Context(), pageRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	details := make([]models.UserDetails, 0, len(page.Users))
	if len(page.Users) > 0 {
		if err = copier.Copy(&details, &page.Users); err != nil {
			writeError(w, r, err)
			return
		}
	}

	utils.WriteJSON(w, r, models.UsersResponse{Users: details, Pagination: page.Pagination}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	claims, id, err := claimsAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), claims, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var details models.UserDetails
	if err = copier.Copy(&details, &user); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, details, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	claims, id, err := claimsAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err = decodeBody(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.UserService.UpdateUser(r.Context(), claims, id, update); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, r, app.MsgUserUpdated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	claims, id, err := claimsAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), claims, id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, r, app.MsgUserDeleted, http.StatusOK)
}

func (h *Handler) userDocuments(w http.ResponseWriter, r *http.Request) {
	claims, id, err := claimsAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	docs, err := h.services.DocumentService.ListUserDocuments(r.Context(), claims, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, models.DocumentsResponse{Documents: listItems(docs)}, http.StatusOK)
}

func claimsAndID(r *http.Request) (models.Claims, int64, error) {
	claims, err := requester(r)
	if err != nil {
		return models.Claims{}, 0, err
	}
	id, err := pathID(r)
	if err != nil {
		return models.Claims{}, 0, err
	}
	return claims, id, nil
}
