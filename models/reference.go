// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ReferenceKind names one of the reference collections used to translate
// between names and identifiers.
type ReferenceKind string

const (
	ReferenceCampus  ReferenceKind = "campus"
	ReferenceClass   ReferenceKind = "class"
	ReferenceTeacher ReferenceKind = "teacher"
	ReferenceLeader  ReferenceKind = "leader"
)

// ReferenceKinds lists every kind in load order.
var ReferenceKinds = []ReferenceKind{ReferenceCampus, ReferenceClass, ReferenceTeacher, ReferenceLeader}

// ReferenceEntity is a campus, class or staff member. Identity is ID; names
// are assumed unique within a kind.
type ReferenceEntity struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	CampusID string `json:"campusId,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// CreateCampusRequest is the payload of POST /api/campus.
type CreateCampusRequest struct {
	Name string `json:"name"`
}

// CreateClassRequest is the payload of POST /api/classes.
type CreateClassRequest struct {
	Name     string `json:"name"`
	CampusID string `json:"campusId"`
}

// ReferenceCollection is a reference listing as returned by the management
// system: either a bare list or a paginated envelope {data: [...], ...}.
type ReferenceCollection struct {
	Items     []ReferenceEntity
	Paginated bool
	Total     int
	Page      int
	PageSize  int
}

// Len returns the number of entities in the collection.
func (c ReferenceCollection) Len() int {
	return len(c.Items)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (c *ReferenceCollection) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*c = ReferenceCollection{}
		return nil
	}

	switch b[0] {
	case '[':
		var items []ReferenceEntity
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*c = ReferenceCollection{Items: items}
		return nil
	case '{':
		var page Page[ReferenceEntity]
		if err := json.Unmarshal(b, &page); err != nil {
			return err
		}
		*c = ReferenceCollection{
			Items:     page.Data,
			Paginated: true,
			Total:     page.Total,
			Page:      page.Page,
			PageSize:  page.PageSize,
		}
		return nil
	default:
		return fmt.Errorf("reference collection must be a list or a {data: [...]} envelope")
	}
}

// MarshalJSON implements [json.Marshaler], preserving the original shape.
func (c ReferenceCollection) MarshalJSON() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []ReferenceEntity{}
	}
	if !c.Paginated {
		return json.Marshal(items)
	}
	return json.Marshal(Page[ReferenceEntity]{Data: items, Total: c.Total, Page: c.Page, PageSize: c.PageSize})
}
