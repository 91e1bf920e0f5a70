// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository] over the "documents" table.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateDocument inserts doc. A title collision surfaces as
// [ErrDocumentAlreadyExists] through the unique index.
func (d *documentRepository) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDocumentQuery(doc)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.CreateDocument").Msg("failed to create query")
		return models.Document{}, err
	}

	created, err := scanDocument(d.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.CreateDocument").
			Int64("owner_id", doc.OwnerID).
			Bool("retryable", d.retryable(err)).
			Msg("error inserting document")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Document{}, ErrDocumentAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Document{}, ErrReferenceNotFound
		default:
			return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return created, nil
}

func (d *documentRepository) FindDocumentByID(ctx context.Context, id int64) (models.Document, error) {
	return d.findDocument(ctx, sq.Eq{"id": id})
}

func (d *documentRepository) FindDocumentByTitle(ctx context.Context, title string) (models.Document, error) {
	return d.findDocument(ctx, sq.Eq{"title": title})
}

func (d *documentRepository) findDocument(ctx context.Context, where sq.Eq) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentQuery(where)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.findDocument").Msg("failed to create query")
		return models.Document{}, err
	}

	doc, err := scanDocument(d.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "documentRepository.findDocument").Bool("retryable", d.retryable(err)).Msg("error selecting document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc, nil
}

// ListDocuments returns the documents visible to filter.ViewerID, newest
// first.
func (d *documentRepository) ListDocuments(ctx context.Context, filter models.DocumentFilter, page models.PageRequest) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(filter, page)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.ListDocuments").Msg("failed to create query")
		return nil, err
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.ListDocuments").
			Int64("viewer_id", filter.ViewerID).
			Bool("retryable", d.retryable(err)).
			Msg("failed to execute query for listing documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, models.PageSize)
	for rows.Next() {
		doc, scanErr := scanDocument(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "documentRepository.ListDocuments").
				Int64("viewer_id", filter.ViewerID).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		docs = append(docs, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "documentRepository.ListDocuments").
			Int64("viewer_id", filter.ViewerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return docs, nil
}

func (d *documentRepository) CountDocuments(ctx context.Context, filter models.DocumentFilter) (int, error) {
	query, args, err := buildCountDocumentsQuery(filter)
	if err != nil {
		return 0, err
	}
	return d.countQuery(ctx, query, args)
}

func (d *documentRepository) UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDocumentQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.UpdateDocument").Msg("failed to create query")
		return models.Document{}, err
	}

	doc, err := scanDocument(d.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).
			Str("func", "documentRepository.UpdateDocument").
			Int64("document_id", id).
			Bool("retryable", d.retryable(err)).
			Msg("error updating document")
		if isUniqueViolation(err) {
			return models.Document{}, ErrDocumentAlreadyExists
		}
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return doc, nil
}

func (d *documentRepository) DeleteDocument(ctx context.Context, id int64) error {
	return d.delete(ctx, models.Document{}.TableName(), id, ErrDocumentNotFound, nil)
}
