package models

import (
	"slices"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type PostStatus string

const (
	PostPublished PostStatus = "published"
	PostDraft     PostStatus = "draft"
	PostArchived  PostStatus = "archived"
)

// PostStatusRule validates a PostStatus value.
var PostStatusRule = validation.In(PostPublished, PostDraft, PostArchived)

// BlogPost content is Markdown.
type BlogPost struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	Image       string     `json:"image"`
	Author      string     `json:"author"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Status      PostStatus `json:"status"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (b BlogPost) GetID() int64 { return b.ID }

func (b BlogPost) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&b.Content, validation.Required),
		validation.Field(&b.Author, validation.Required),
		validation.Field(&b.Status, validation.Required, PostStatusRule),
	)
}

type BlogPostPatch struct {
	Title    *string     `json:"title,omitempty"`
	Slug     *string     `json:"slug,omitempty"`
	Excerpt  *string     `json:"excerpt,omitempty"`
	Content  *string     `json:"content,omitempty"`
	Category *string     `json:"category,omitempty"`
	Image    *string     `json:"image,omitempty"`
	Author   *string     `json:"author,omitempty"`
	Status   *PostStatus `json:"status,omitempty"`
	Tags     []string    `json:"tags,omitempty"`
}

func (p BlogPostPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&p.Content, validation.NilOrNotEmpty),
		validation.Field(&p.Author, validation.NilOrNotEmpty),
		validation.Field(&p.Status, validation.NilOrNotEmpty, PostStatusRule),
	)
}

// Apply replaces Tags whole when the patch carries any.
func (p BlogPostPatch) Apply(b BlogPost) BlogPost {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Slug != nil {
		b.Slug = *p.Slug
	}
	if p.Excerpt != nil {
		b.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Image != nil {
		b.Image = *p.Image
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Tags != nil {
		b.Tags = slices.Clone(p.Tags)
	}
	return b
}
