package service

import (
	"context"
	"fmt"

	"news-notes/internal/repository"
)

// NewsService implements the news read use-cases.
type NewsService struct {
	news     repository.NewsRepository
	comments repository.CommentRepository
	pageSize int
}

// NewNewsService creates a new NewsService. pageSize is the fixed
// number of items on one home page.
func NewNewsService(news repository.NewsRepository, comments repository.CommentRepository, pageSize int) *NewsService {
	return &NewsService{news: news, comments: comments, pageSize: pageSize}
}

// HomePage returns one page of the newest-first news listing. Page
// numbers start at 1; out-of-range numbers yield an empty page rather
// than an error. One extra row is fetched to learn whether a next page
// exists without a second count query.
func (s *NewsService) HomePage(ctx context.Context, page int) (*NewsPage, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * s.pageSize
	items, err := s.news.ListPage(ctx, s.pageSize+1, offset)
	if err != nil {
		return nil, fmt.Errorf("list news page %d: %w", page, err)
	}

	hasNext := len(items) > s.pageSize
	if hasNext {
		items = items[:s.pageSize]
	}

	return &NewsPage{
		Items:   items,
		Number:  page,
		HasNext: hasNext,
		HasPrev: page > 1,
	}, nil
}

// Detail returns the news item with its comment thread oldest-first,
// or nil when the item does not exist.
func (s *NewsService) Detail(ctx context.Context, id string) (*NewsDetail, error) {
	news, err := s.news.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news %s: %w", id, err)
	}
	if news == nil {
		return nil, nil
	}

	comments, err := s.comments.ListByNews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments for news %s: %w", id, err)
	}

	return &NewsDetail{News: news, Comments: comments}, nil
}
