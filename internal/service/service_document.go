// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// documentService is the concrete implementation of DocumentService.
// Every read and write goes through the access policy after the document
// was resolved, so a missing document is reported before a denied one.
type documentService struct {
	documentRepository store.DocumentRepository

	logger *logger.Logger
}

func NewDocumentService(documentRepository store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		logger:             logger,
	}
}

// CreateDocument stores doc on behalf of requester. The owner is always the
// requester. A taken title yields store.ErrDocumentAlreadyExists and
// nothing is written.
func (d *documentService) CreateDocument(ctx context.Context, requester models.Claims, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	if err := d.ensureTitleIsFree(ctx, doc.Title, 0); err != nil {
		return models.Document{}, err
	}

	doc.OwnerID = requester.UserID

	created, err := d.documentRepository.CreateDocument(ctx, doc)
	if err != nil {
		log.Err(err).Str("title", doc.Title).Int64("owner_id", doc.OwnerID).Msg("document creation failed")
		return models.Document{}, fmt.Errorf("document creation failed: %w", err)
	}

	return created, nil
}

// ListDocuments returns a page of the public documents and the private
// documents of requester, newest first.
func (d *documentService) ListDocuments(ctx context.Context, requester models.Claims, page models.PageRequest) (models.DocumentPage, error) {
	log := logger.FromContext(ctx)
	filter := models.DocumentFilter{ViewerID: requester.UserID}

	docs, err := d.documentRepository.ListDocuments(ctx, filter, page)
	if err != nil {
		log.Err(err).Msg("listing documents failed")
		return models.DocumentPage{}, fmt.Errorf("listing documents failed: %w", err)
	}

	total, err := d.documentRepository.CountDocuments(ctx, filter)
	if err != nil {
		log.Err(err).Msg("counting documents failed")
		return models.DocumentPage{}, fmt.Errorf("counting documents failed: %w", err)
	}

	return models.DocumentPage{Documents: docs, Pagination: models.NewPagination(page, total)}, nil
}

func (d *documentService) GetDocument(ctx context.Context, requester models.Claims, id int64) (models.Document, error) {
	doc, err := d.find(ctx, id)
	if err != nil {
		return models.Document{}, err
	}

	if decision := policy.ReadDocument(doc, requester); !decision.Allowed() {
		logger.FromContext(ctx).Info().Int64("id", id).Stringer("outcome", decision.Outcome).Msg("document read rejected")
		return models.Document{}, decision.Err
	}

	return *doc, nil
}

func (d *documentService) UpdateDocument(ctx context.Context, requester models.Claims, id int64, update models.DocumentUpdate) (models.Document, error) {
	if err := d.authorizeWrite(ctx, requester, id); err != nil {
		return models.Document{}, err
	}

	if update.Title != nil {
		if err := d.ensureTitleIsFree(ctx, *update.Title, id); err != nil {
			return models.Document{}, err
		}
	}

	updated, err := d.documentRepository.UpdateDocument(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("document update failed")
		return models.Document{}, fmt.Errorf("document update failed: %w", err)
	}

	return updated, nil
}

func (d *documentService) DeleteDocument(ctx context.Context, requester models.Claims, id int64) error {
	if err := d.authorizeWrite(ctx, requester, id); err != nil {
		return err
	}

	if err := d.documentRepository.DeleteDocument(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("document deletion failed")
		return fmt.Errorf("document deletion failed: %w", err)
	}

	return nil
}

func (d *documentService) ListUserDocuments(ctx context.Context, requester models.Claims, ownerID int64) ([]models.Document, error) {
	filter := models.DocumentFilter{ViewerID: requester.UserID, OwnerID: ownerID}

	docs, err := d.documentRepository.ListDocuments(ctx, filter, models.PageRequest{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", ownerID).Msg("listing user documents failed")
		return nil, fmt.Errorf("listing user documents failed: %w", err)
	}

	return docs, nil
}

func (d *documentService) SearchDocuments(ctx context.Context, requester models.Claims, query string) ([]models.Document, error) {
	filter := models.DocumentFilter{ViewerID: requester.UserID, TitleQuery: query}

	docs, err := d.documentRepository.ListDocuments(ctx, filter, models.PageRequest{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("query", query).Msg("document search failed")
		return nil, fmt.Errorf("document search failed: %w", err)
	}

	return docs, nil
}

// find returns nil without error when the document does not exist.
func (d *documentService) find(ctx context.Context, id int64) (*models.Document, error) {
	doc, err := d.documentRepository.FindDocumentByID(ctx, id)
	if errors.Is(err, store.ErrDocumentNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("document search failed")
		return nil, fmt.Errorf("document search failed: %w", err)
	}
	return &doc, nil
}

func (d *documentService) authorizeWrite(ctx context.Context, requester models.Claims, id int64) error {
	doc, err := d.find(ctx, id)
	if err != nil {
		return err
	}

	if decision := policy.WriteDocument(doc, requester); !decision.Allowed() {
		logger.FromContext(ctx).Info().Int64("id", id).Stringer("outcome", decision.Outcome).Msg("document change rejected")
		return decision.Err
	}

	return nil
}

// ensureTitleIsFree fails with store.ErrDocumentAlreadyExists when another
// document than exceptID already uses title.
func (d *documentService) ensureTitleIsFree(ctx context.Context, title string, exceptID int64) error {
	existing, err := d.documentRepository.FindDocumentByTitle(ctx, title)
	switch {
	case errors.Is(err, store.ErrDocumentNotFound):
		return nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("title", title).Msg("document search by title failed")
		return fmt.Errorf("document search by title failed: %w", err)
	case existing.ID == exceptID:
		return nil
	default:
		logger.FromContext(ctx).Info().Str("title", title).Msg("document title is taken")
		return store.ErrDocumentAlreadyExists
	}
}
