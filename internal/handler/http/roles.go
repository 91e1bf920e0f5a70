package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	var role models.Role
	if err := decodeBody(r, &role, validators.CreateRoleFields...); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.services.RoleService.CreateRole(r.Context(), models.Role{Title: role.Title}); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, r, app.MsgRoleCreated, http.StatusOK)
}

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.RoleService.ListRoles(r.Context(), pageRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	roles := page.Roles
	if roles == nil {
		roles = []models.Role{}
	}

	utils.WriteJSON(w, r, models.RolesResponse{Roles: roles, Pagination: page.Pagination}, http.StatusOK)
}

func (h *Handler) getRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	role, err := h.services.RoleService.GetRole(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, models.RoleResponse{Role: role}, http.StatusOK)
}

// updateRole answers 201 on success.
func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var role models.Role
	if err = decodeBody(r, &role, validators.CreateRoleFields...); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.RoleService.UpdateRole(r.Context(), id, role.Title)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, models.UpdatedRoleResponse{UpdatedRole: updated}, http.StatusCreated)
}

func (h *Handler) deleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.RoleService.DeleteRole(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, r, app.MsgRoleDeleted, http.StatusOK)
}
