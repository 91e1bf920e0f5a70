package models

import "time"

// Access is the visibility level of a document.
type Access string

const (
	// AccessPublic documents can be read by every authenticated user.
	AccessPublic Access = "public"
	// AccessPrivate documents can be read only by their owner.
	AccessPrivate Access = "private"
)

// IsValid reports whether a is one of the known access levels.
func (a Access) IsValid() bool {
	return a == AccessPublic || a == AccessPrivate
}

// Document is a text document owned by a user.
type Document struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Access  Access `json:"access"`

	// OwnerID is always set from the authenticated requester, never from
	// the request body.
	OwnerID int64 `json:"ownerId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// DocumentUpdate describes a partial update of a document.
// Only non-nil fields are written.
type DocumentUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Access  *Access `json:"access,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u DocumentUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Access == nil
}

// DocumentListItem is the shape of a document inside list responses.
type DocumentListItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Access    Access    `json:"access"`
	OwnerID   int64     `json:"ownerId"`
	Published time.Time `json:"published"`
}

// ListItem formats d for list responses.
func (d Document) ListItem() DocumentListItem {
	return DocumentListItem{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		Access:    d.Access,
		OwnerID:   d.OwnerID,
		Published: d.CreatedAt,
	}
}

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	// ViewerID is the requester. Private documents of other users are
	// never returned.
	ViewerID int64

	// OwnerID, when non-zero, restricts results to one owner.
	OwnerID int64

	// TitleQuery, when non-empty, is matched case-insensitively against titles.
	TitleQuery string
}
