package engagement

import (
	"regexp"
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BlogPost is an advice article. Published posts are publicly readable.
type BlogPost struct {
	shared.BaseAggregateRoot
	AuthorID    uuid.UUID
	Title       string
	Slug        string
	Body        string
	Published   bool
	PublishedAt *time.Time
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// NewBlogPost creates an unpublished blog post
func NewBlogPost(authorID uuid.UUID, title, body string) (*BlogPost, error) {
	if authorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Author cannot be empty")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Post title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Post title cannot exceed 200 characters")
	}
	slug := Slugify(title)
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Post title must contain letters or digits")
	}

	return &BlogPost{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AuthorID:          authorID,
		Title:             title,
		Slug:              slug,
		Body:              body,
	}, nil
}

// Update updates the post's title and body. The slug follows the title.
func (p *BlogPost) Update(title, body string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Post title cannot be empty")
	}
	slug := Slugify(title)
	if slug == "" {
		return shared.NewDomainError("INVALID_TITLE", "Post title must contain letters or digits")
	}

	p.Title = title
	p.Slug = slug
	p.Body = body
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Publish makes the post publicly visible
func (p *BlogPost) Publish() error {
	if p.Published {
		return shared.NewDomainError("INVALID_STATE", "Post is already published")
	}

	now := time.Now()
	p.Published = true
	p.PublishedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()

	return nil
}

// Unpublish hides the post from public view
func (p *BlogPost) Unpublish() error {
	if !p.Published {
		return shared.NewDomainError("INVALID_STATE", "Post is not published")
	}

	p.Published = false
	p.PublishedAt = nil
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}
