package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reelstream/reelstream-go/internal/model"
	"github.com/reelstream/reelstream-go/internal/repository"
	"github.com/reelstream/reelstream-go/internal/storage"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrUnsupportedMedia = errors.New("file must be a video")
)

// ReelService handles reel upload and listing business logic.
type ReelService struct {
	repo  *repository.ReelRepository
	files *storage.FileStore
}

// NewReelService creates a new ReelService.
func NewReelService(repo *repository.ReelRepository, files *storage.FileStore) *ReelService {
	return &ReelService{repo: repo, files: files}
}

// Upload validates the upload, writes the video to the file store and
// persists the reel record. contentType is the declared Content-Type of the
// multipart file part and must start with "video/".
func (s *ReelService) Upload(ctx context.Context, title, contentType, originalName string, src io.Reader) (model.ReelResponse, error) {
	if strings.TrimSpace(title) == "" {
		return model.ReelResponse{}, ErrTitleRequired
	}
	if !strings.HasPrefix(contentType, "video/") {
		return model.ReelResponse{}, ErrUnsupportedMedia
	}

	filename, err := s.files.Save(src, originalName)
	if err != nil {
		return model.ReelResponse{}, err
	}

	reel := &model.Reel{
		ID:        uuid.NewString(),
		Title:     title,
		Filename:  filename,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, reel); err != nil {
		return model.ReelResponse{}, err
	}

	return model.ReelResponse{
		ID:        reel.ID,
		Title:     reel.Title,
		Filename:  reel.Filename,
		CreatedAt: reel.CreatedAt,
	}, nil
}

// List returns all reels, newest first.
func (s *ReelService) List(ctx context.Context) ([]model.ReelResponse, error) {
	reels, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.ReelResponse, len(reels))
	for i, reel := range reels {
		result[i] = model.ReelResponse{
			ID:        reel.ID,
			Title:     reel.Title,
			Filename:  reel.Filename,
			CreatedAt: reel.CreatedAt,
		}
	}
	return result, nil
}
