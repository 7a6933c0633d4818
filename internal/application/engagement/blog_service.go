package engagement

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BlogService manages advice articles. Published posts are readable
// without authentication.
type BlogService struct {
	blogRepo engagement.BlogPostRepository
	logger   *zap.Logger
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo engagement.BlogPostRepository, logger *zap.Logger) *BlogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BlogService{
		blogRepo: blogRepo,
		logger:   logger,
	}
}

// Create creates an unpublished blog post
func (s *BlogService) Create(ctx context.Context, input CreateBlogPostInput) (*BlogPostInfo, error) {
	post, err := engagement.NewBlogPost(input.AuthorID, input.Title, input.Body)
	if err != nil {
		return nil, err
	}

	if err := s.blogRepo.Save(ctx, post); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("SLUG_TAKEN", "A post with this title already exists")
		}
		s.logger.Error("Failed to save blog post", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create post")
	}

	info := blogPostInfoFromDomain(post)
	return &info, nil
}

// Update changes a post's title and body. The slug follows the title.
func (s *BlogService) Update(ctx context.Context, input UpdateBlogPostInput) (*BlogPostInfo, error) {
	post, err := s.loadPost(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	if err := post.Update(input.Title, input.Body); err != nil {
		return nil, err
	}

	if err := s.blogRepo.Save(ctx, post); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("SLUG_TAKEN", "A post with this title already exists")
		}
		s.logger.Error("Failed to save blog post", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update post")
	}

	info := blogPostInfoFromDomain(post)
	return &info, nil
}

// Publish makes a post publicly visible
func (s *BlogService) Publish(ctx context.Context, postID uuid.UUID) (*BlogPostInfo, error) {
	return s.transition(ctx, postID, (*engagement.BlogPost).Publish)
}

// Unpublish hides a post from public view
func (s *BlogService) Unpublish(ctx context.Context, postID uuid.UUID) (*BlogPostInfo, error) {
	return s.transition(ctx, postID, (*engagement.BlogPost).Unpublish)
}

// Get returns a single post by ID
func (s *BlogService) Get(ctx context.Context, postID uuid.UUID) (*BlogPostInfo, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	info := blogPostInfoFromDomain(post)
	return &info, nil
}

// GetPublishedBySlug returns a published post by slug.
// Unpublished posts are not visible through this lookup.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*BlogPostInfo, error) {
	post, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load blog post", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load post")
	}

	if !post.Published {
		return nil, shared.ErrNotFound
	}

	info := blogPostInfoFromDomain(post)
	return &info, nil
}

// List returns all posts, drafts included
func (s *BlogService) List(ctx context.Context, filter shared.Filter) (*BlogPostListResult, error) {
	posts, total, err := s.blogRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list blog posts", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list posts")
	}
	return s.listResult(posts, total), nil
}

// ListPublished returns only published posts
func (s *BlogService) ListPublished(ctx context.Context, filter shared.Filter) (*BlogPostListResult, error) {
	posts, total, err := s.blogRepo.FindPublished(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list published blog posts", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list posts")
	}
	return s.listResult(posts, total), nil
}

// Delete removes a post
func (s *BlogService) Delete(ctx context.Context, postID uuid.UUID) error {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return err
	}

	if err := s.blogRepo.Delete(ctx, post.ID); err != nil {
		s.logger.Error("Failed to delete blog post", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete post")
	}
	return nil
}

func (s *BlogService) transition(ctx context.Context, postID uuid.UUID, change func(*engagement.BlogPost) error) (*BlogPostInfo, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := change(post); err != nil {
		return nil, err
	}

	if err := s.blogRepo.Save(ctx, post); err != nil {
		s.logger.Error("Failed to save blog post", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update post")
	}

	info := blogPostInfoFromDomain(post)
	return &info, nil
}

func (s *BlogService) listResult(posts []engagement.BlogPost, total int64) *BlogPostListResult {
	infos := make([]BlogPostInfo, 0, len(posts))
	for i := range posts {
		infos = append(infos, blogPostInfoFromDomain(&posts[i]))
	}
	return &BlogPostListResult{Posts: infos, Total: total}
}

func (s *BlogService) loadPost(ctx context.Context, postID uuid.UUID) (*engagement.BlogPost, error) {
	post, err := s.blogRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load blog post", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load post")
	}
	return post, nil
}
