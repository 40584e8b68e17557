package newsportal

import "github.com/daniilsolovey/news-website/internal/db"

func Map[From, To any](list []From, converter func(*From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(&list[i])
	}
	return result
}

func NewCategory(c *db.Category) Category {
	category := Category{
		ID:   c.ID,
		Name: c.Name,
	}

	if c.News != nil {
		category.News = Map(c.News, NewNews)
		for i := range category.News {
			category.News[i].CategoryName = c.Name
		}
	}

	return category
}

func NewCategories(list []db.Category) []Category {
	return Map(list, NewCategory)
}

func NewNews(n *db.News) News {
	news := News{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Date:        n.Date,
		Views:       n.Views,
		CategoryID:  n.CategoryID,
		AuthorID:    n.AuthorID,
	}

	if n.Category != nil {
		news.CategoryName = n.Category.Name
	}
	if n.Author != nil {
		news.AuthorName = n.Author.Username
	}

	return news
}

func NewNewsList(list []db.News) []News {
	return Map(list, NewNews)
}

func NewUser(u *db.User) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
		Role:     Role(u.Role),
	}
}
