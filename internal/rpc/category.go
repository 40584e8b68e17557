package rpc

import (
	"context"

	"github.com/daniilsolovey/news-website/internal/newsportal"
	"github.com/vmkteam/zenrpc/v2"
)

// CategoryService provides RPC methods for categories.
type CategoryService struct {
	zenrpc.Service
	manager *newsportal.CategoryManager
}

func NewCategoryService(manager *newsportal.CategoryManager) *CategoryService {
	return &CategoryService{manager: manager}
}

// List returns all categories with their news.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return Map(categories, NewCategory), nil
}

// Add creates a category. Admin only.
//
//zenrpc:name unique category name
//zenrpc:return created category
//zenrpc:400 validation failed
//zenrpc:401 authentication required
//zenrpc:403 forbidden
//zenrpc:500 internal server error
func (s *CategoryService) Add(ctx context.Context, name string) (*Category, error) {
	category, err := s.manager.AddCategory(ctx, newsportal.ActorFrom(ctx), newsportal.Category{Name: name})
	if err != nil {
		return nil, newError(err)
	}

	result := NewCategory(*category)
	return &result, nil
}
