// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"math"
	"strconv"
)

// PageSize is the page size baked into the page arithmetic. It is used both
// to translate a page number into a row skip and to compute the page count,
// regardless of the limit a caller asks for.
const PageSize = 10

// MaxPage is the last page whose row skip fits in a signed 64-bit OFFSET.
// Larger page numbers are clamped to it and yield no rows.
const MaxPage = math.MaxInt64/PageSize + 1

// PageRequest holds the page number (1-based offset) and page size (limit)
// requested through the query string.
type PageRequest struct {
	// Offset is the 1-based page number.
	Offset int

	// Limit is the maximum number of rows to return.
	Limit int
}

// NewPageRequest parses the raw offset and limit query values.
// Missing, non-numeric or non-positive values fall back to page 1 and
// [PageSize] rows respectively. Offsets past [MaxPage] are clamped.
func NewPageRequest(offset, limit string) PageRequest {
	req := PageRequest{Offset: 1, Limit: PageSize}

	v, err := strconv.ParseUint(offset, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange), err == nil && v > MaxPage:
		req.Offset = MaxPage
	case err == nil && v >= 1:
		req.Offset = int(v)
	}
	if v, err := strconv.Atoi(limit); err == nil && v >= 1 {
		req.Limit = v
	}

	return req
}

// RowSkip translates the page number into the number of rows to skip:
// (offset - 1) * PageSize, never more than math.MaxInt64.
func (p PageRequest) RowSkip() uint64 {
	switch {
	case p.Offset <= 1:
		return 0
	case p.Offset > MaxPage:
		return uint64(MaxPage-1) * PageSize
	}
	return uint64(p.Offset-1) * PageSize
}

// Pagination is the pagination metadata attached to list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageCount  int `json:"pageCount"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

// NewPagination derives pagination metadata for a listing of totalCount rows.
//
// PageCount is floor((totalCount + 1) / PageSize). The formula ignores
// req.Limit; callers asking for a different page size get a page count
// computed for pages of ten.
func NewPagination(req PageRequest, totalCount int) Pagination {
	return Pagination{
		Page:       req.Offset,
		PageCount:  (totalCount + 1) / PageSize,
		PageSize:   req.Limit,
		TotalCount: totalCount,
	}
}
