package rpc

import (
	"context"

	"github.com/daniilsolovey/news-website/internal/newsportal"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// NewsService provides RPC methods for news operations.
type NewsService struct {
	zenrpc.Service
	manager *newsportal.NewsManager
}

func NewNewsService(manager *newsportal.NewsManager) *NewsService {
	return &NewsService{manager: manager}
}

// List returns one page of news sorted by date.
//
//zenrpc:filter sorting and paging options
//zenrpc:return list of news
//zenrpc:500 internal server error
func (s *NewsService) List(ctx context.Context, filter NewsFilter) ([]News, error) {
	desc, page, pageSize := true, 0, 0
	if filter.Desc != nil {
		desc = *filter.Desc
	}
	if filter.Page != nil {
		page = *filter.Page
	}
	if filter.PageSize != nil {
		pageSize = *filter.PageSize
	}

	list, err := s.manager.NewsSortedByDate(ctx, desc, page, pageSize)
	if err != nil {
		return nil, newError(err)
	}

	return Map(list, NewNews), nil
}

// All returns every news item.
//
//zenrpc:return list of news
//zenrpc:500 internal server error
func (s *NewsService) All(ctx context.Context) ([]News, error) {
	list, err := s.manager.News(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return Map(list, NewNews), nil
}

// Popular returns news with at least minViews views, most viewed first.
//
//zenrpc:minViews=10 minimum number of views
//zenrpc:return list of news
//zenrpc:500 internal server error
func (s *NewsService) Popular(ctx context.Context, minViews *int) ([]News, error) {
	list, err := s.manager.PopularNews(ctx, *minViews)
	if err != nil {
		return nil, newError(err)
	}

	return Map(list, NewNews), nil
}

// ByCategory returns news of one category.
//
//zenrpc:categoryId category numeric ID
//zenrpc:return list of news
//zenrpc:500 internal server error
func (s *NewsService) ByCategory(ctx context.Context, categoryId int) ([]News, error) {
	list, err := s.manager.NewsByCategory(ctx, categoryId)
	if err != nil {
		return nil, newError(err)
	}

	return Map(list, NewNews), nil
}

// Count returns the number of news, optionally within one category.
//
//zenrpc:categoryId optional category filter
//zenrpc:return count of news items
//zenrpc:500 internal server error
func (s *NewsService) Count(ctx context.Context, categoryId *int) (int, error) {
	count, err := s.manager.NewsCount(ctx, categoryId)
	return count, newError(err)
}

// ByID returns a single news item and counts the read as a view.
//
//zenrpc:id news numeric ID
//zenrpc:return news
//zenrpc:400 id must be positive
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *NewsService) ByID(ctx context.Context, id int) (*News, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	news, err := s.manager.NewsByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	if news == nil {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	result := NewNews(*news)
	return &result, nil
}

// Add publishes news on behalf of the caller.
//
//zenrpc:news news to publish
//zenrpc:return created news
//zenrpc:400 validation failed
//zenrpc:401 authentication required
//zenrpc:403 forbidden
//zenrpc:500 internal server error
func (s *NewsService) Add(ctx context.Context, news NewsInput) (*News, error) {
	created, err := s.manager.AddNews(ctx, newsportal.ActorFrom(ctx), news.ToModel(0))
	if err != nil {
		return nil, newError(err)
	}

	result := NewNews(*created)
	return &result, nil
}

// Edit overwrites title, description and category. Only the author or an admin may edit.
//
//zenrpc:id news numeric ID
//zenrpc:news new values
//zenrpc:return edited news
//zenrpc:400 validation failed
//zenrpc:401 authentication required
//zenrpc:403 forbidden
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *NewsService) Edit(ctx context.Context, id int, news NewsInput) (*News, error) {
	edited, err := s.manager.EditNews(ctx, newsportal.ActorFrom(ctx), news.ToModel(id))
	if err != nil {
		return nil, newError(err)
	}

	result := NewNews(*edited)
	return &result, nil
}

// Delete removes news. Only the author or an admin may delete.
//
//zenrpc:id news numeric ID
//zenrpc:401 authentication required
//zenrpc:403 forbidden
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *NewsService) Delete(ctx context.Context, id int) (bool, error) {
	if err := s.manager.DeleteNews(ctx, newsportal.ActorFrom(ctx), id); err != nil {
		return false, newError(err)
	}

	return true, nil
}
