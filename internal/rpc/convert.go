package rpc

import "github.com/daniilsolovey/news-website/internal/newsportal"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewNews(n newsportal.News) News {
	return News{
		ID:           n.ID,
		Title:        n.Title,
		Description:  n.Description,
		Date:         n.Date,
		Views:        n.Views,
		CategoryID:   n.CategoryID,
		CategoryName: n.CategoryName,
		AuthorID:     n.AuthorID,
		AuthorName:   n.AuthorName,
	}
}

func NewCategory(c newsportal.Category) Category {
	return Category{
		ID:   c.ID,
		Name: c.Name,
		News: Map(c.News, NewNews),
	}
}

func NewUser(u newsportal.User) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
	}
}
