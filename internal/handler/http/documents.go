// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/app"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	claims, err := requester(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var doc models.Document
	if err = decodeBody(r, &doc, validators.CreateDocumentFields...); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.DocumentService.CreateDocument(r.Context(), claims, doc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, models.DocumentResponse{Message: app.MsgDocumentCreated, Document: created}, http.StatusOK)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	claims, err := requester(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.DocumentService.ListDocuments(r.Context(), claims, pageRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, models.DocumentsResponse{Documents: listItems(page.Documents), Pagination: &page.Pagination}, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	claims, id, err := claimsAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	doc, err := h.services.DocumentService.GetDocument(r.Context(), claims, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, models.DocumentResponse{Document: doc}, http.StatusOK)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	claims, id, err := claimsAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.DocumentUpdate
	if err = decodeBody(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.DocumentService.UpdateDocument(r.Context(), claims, id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, models.DocumentResponse{Message: app.MsgDocumentUpdated, Document: updated}, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	claims, id, err := claimsAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.DocumentService.DeleteDocument(r.Context(), claims, id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, r, app.MsgDocumentDeleted, http.StatusOK)
}

// searchDocuments matches ?q= against the titles of visible documents.
// An empty query lists every visible document.
func (h *Handler) searchDocuments(w http.ResponseWriter, r *http.Request) {
	claims, err := requester(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))

	docs, err := h.services.DocumentService.SearchDocuments(r.Context(), claims, query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, models.DocumentsResponse{Documents: listItems(docs)}, http.StatusOK)
}

func listItems(docs []models.Document) []models.DocumentListItem {
	items := make([]models.DocumentListItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.ListItem())
	}
	return items
}
