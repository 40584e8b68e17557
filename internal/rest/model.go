package rest

import "time"

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

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type NewsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int    `json:"categoryId"`
}

// NewsListRequest is decoded from the query string: ?asc=true&page=2&page_size=20.
type NewsListRequest struct {
	Asc      bool
	Page     int
	PageSize int
}

// PopularRequest is decoded from the query string: ?min_views=100.
type PopularRequest struct {
	MinViews int
}

// NewsCountRequest is decoded from the query string: ?category_id=3. Zero counts every news item.
type NewsCountRequest struct {
	CategoryID int
}

type CountResponse struct {
	Count int `json:"count"`
}
