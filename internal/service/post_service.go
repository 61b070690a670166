package service

import (
	"context"
	"fmt"
	"strings"

	"comitefd/internal/models"
	"comitefd/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	base := strings.TrimSpace(req.Slug)
	if base == "" {
		base = Slugify(req.Title)
	}

	slug, err := p.uniqueSlug(ctx, base)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:             strings.TrimSpace(req.Title),
		Slug:              slug,
		CoverImageURL:     req.CoverImageURL,
		Content:           req.Content,
		CommitteeMemberID: req.CommitteeMemberID,
		PublishedAt:       req.PublishedAt,
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// uniqueSlug probes the store for the first free slug, appending -1,
// -2, ... on collision. Terminates because each probe excludes one
// existing row.
func (p *postService) uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for n := 1; ; n++ {
		exists, err := p.postRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}

func (p *postService) UpdatePost(ctx context.Context, req models.UpdatePostRequest) (*models.Post, error) {
	return p.postRepo.Update(ctx, req)
}

func (p *postService) DeletePost(ctx context.Context, postID string) error {
	return p.postRepo.Delete(ctx, postID)
}
