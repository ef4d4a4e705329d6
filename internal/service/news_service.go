package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/repository"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidNewsLink  = errors.New("news_link must be a valid http(s) URL")
	ErrInvalidThumbnail = errors.New("thumbnail_url must be a valid http(s) URL")
)

// Column limits. Longer input is truncated, not rejected.
const (
	maxTitleLen       = 255
	maxDescriptionLen = 2000
	maxWriterLen      = 100
)

type NewsService struct {
	newsRepo repository.NewsRepository
}

func NewNewsService(newsRepo repository.NewsRepository) *NewsService {
	return &NewsService{newsRepo: newsRepo}
}

// NewsInput carries a new item. Thumbnail is either a remote URL or a local
// /uploads path when ThumbnailUploaded is set; only remote URLs are
// shape-checked.
type NewsInput struct {
	Title             string
	Description       string
	Writer            string
	Thumbnail         string
	ThumbnailUploaded bool
	NewsLink          string
}

func (s *NewsService) Create(ctx context.Context, input NewsInput) (*domain.News, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.NewsLink != "" && !isHTTPURL(input.NewsLink) {
		return nil, ErrInvalidNewsLink
	}
	if input.Thumbnail != "" && !input.ThumbnailUploaded && !isHTTPURL(input.Thumbnail) {
		return nil, ErrInvalidThumbnail
	}

	item := &domain.News{
		Title:        truncate(strings.TrimSpace(input.Title), maxTitleLen),
		Description:  truncate(input.Description, maxDescriptionLen),
		Writer:       truncate(input.Writer, maxWriterLen),
		ThumbnailURL: input.Thumbnail,
		NewsLink:     input.NewsLink,
	}
	if err := s.newsRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return item, nil
}

func (s *NewsService) Get(ctx context.Context, id uint) (*domain.News, error) {
	return s.newsRepo.GetByID(ctx, id)
}

type NewsListOptions struct {
	Writer  string
	Search  string
	Page    int
	PerPage int
}

func (s *NewsService) List(ctx context.Context, opts NewsListOptions) ([]*domain.News, Pagination, error) {
	page, perPage := ClampPage(opts.Page, opts.PerPage)

	items, total, err := s.newsRepo.List(ctx, repository.NewsListParams{
		Writer: opts.Writer,
		Search: opts.Search,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list news: %w", err)
	}
	return items, NewPagination(page, perPage, int(total)), nil
}

// NewsUpdate applies only the fields that are set.
type NewsUpdate struct {
	Title             *string
	Description       *string
	Writer            *string
	Thumbnail         *string
	ThumbnailUploaded bool
	NewsLink          *string
}

func (s *NewsService) Update(ctx context.Context, id uint, update NewsUpdate) (*domain.News, error) {
	item, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, ErrTitleRequired
		}
		item.Title = truncate(strings.TrimSpace(*update.Title), maxTitleLen)
	}
	if update.Description != nil {
		item.Description = truncate(*update.Description, maxDescriptionLen)
	}
	if update.Writer != nil {
		item.Writer = truncate(*update.Writer, maxWriterLen)
	}
	if update.NewsLink != nil {
		if *update.NewsLink != "" && !isHTTPURL(*update.NewsLink) {
			return nil, ErrInvalidNewsLink
		}
		item.NewsLink = *update.NewsLink
	}
	if update.Thumbnail != nil {
		if *update.Thumbnail != "" && !update.ThumbnailUploaded && !isHTTPURL(*update.Thumbnail) {
			return nil, ErrInvalidThumbnail
		}
		item.ThumbnailURL = *update.Thumbnail
	}

	if err := s.newsRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update news: %w", err)
	}
	return item, nil
}

func (s *NewsService) Delete(ctx context.Context, id uint) error {
	return s.newsRepo.Delete(ctx, id)
}

// truncate caps s at limit runes, keeping multi-byte text intact.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func isHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
