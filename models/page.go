package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type PageStatus string

const (
	PagePublished PageStatus = "published"
	PageDraft     PageStatus = "draft"
)

var pageStatusRule = validation.In(PagePublished, PageDraft)

// Page content is raw markup served as-is.
type Page struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Content    string     `json:"content"`
	Author     string     `json:"author"`
	Status     PageStatus `json:"status"`
	IsHomepage bool       `json:"isHomepage"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (p Page) GetID() int64 { return p.ID }

func (p Page) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Author, validation.Required),
		validation.Field(&p.Status, validation.Required, pageStatusRule),
	)
}

// PagePatch cannot set IsHomepage; that goes through SetAsHomepage only.
type PagePatch struct {
	Title   *string     `json:"title,omitempty"`
	Slug    *string     `json:"slug,omitempty"`
	Content *string     `json:"content,omitempty"`
	Author  *string     `json:"author,omitempty"`
	Status  *PageStatus `json:"status,omitempty"`
}

func (p PagePatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&p.Author, validation.NilOrNotEmpty),
		validation.Field(&p.Status, validation.NilOrNotEmpty, pageStatusRule),
	)
}

func (p PagePatch) Apply(page Page) Page {
	if p.Title != nil {
		page.Title = *p.Title
	}
	if p.Slug != nil {
		page.Slug = *p.Slug
	}
	if p.Content != nil {
		page.Content = *p.Content
	}
	if p.Author != nil {
		page.Author = *p.Author
	}
	if p.Status != nil {
		page.Status = *p.Status
	}
	return page
}
