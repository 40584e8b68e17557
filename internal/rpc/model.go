package rpc

import (
	"time"

	"github.com/daniilsolovey/news-website/internal/newsportal"
)

type NewsFilter struct {
	//desc=true newest first
	Desc *bool `json:"desc,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=20 items per page, at most 100
	PageSize *int `json:"pageSize,omitempty"`
}

type NewsInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int    `json:"categoryId"`
}

func (n NewsInput) ToModel(id int) newsportal.News {
	return newsportal.News{
		ID:          id,
		Title:       n.Title,
		Description: n.Description,
		CategoryID:  n.CategoryID,
	}
}

type Registration struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	News []News `json:"news,omitempty"`
}

type News struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Views        int       `json:"views"`
	CategoryID   int       `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	AuthorID     int       `json:"authorId"`
	AuthorName   string    `json:"authorName"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Token struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}
