// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Category struct {
		ID, Name string

		News string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	News struct {
		ID, Title, Description, Date, Views, CategoryID, AuthorID string

		Category, Author string
	}
	User struct {
		ID, Username, Role, PasswordHash string

		News string
	}
}{
	Category: struct {
		ID, Name string

		News string
	}{
		ID:   "id",
		Name: "name",

		News: "News",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	News: struct {
		ID, Title, Description, Date, Views, CategoryID, AuthorID string

		Category, Author string
	}{
		ID:          "id",
		Title:       "title",
		Description: "description",
		Date:        "date",
		Views:       "views",
		CategoryID:  "category_id",
		AuthorID:    "author_id",

		Category: "Category",
		Author:   "Author",
	},
	User: struct {
		ID, Username, Role, PasswordHash string

		News string
	}{
		ID:           "id",
		Username:     "username",
		Role:         "role",
		PasswordHash: "password_hash",

		News: "News",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID   int    `pg:"id,pk"`
	Name string `pg:"name,use_zero"`

	News []News `pg:"rel:has-many,join_fk:category_id"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID          int       `pg:"id,pk"`
	Title       string    `pg:"title,use_zero"`
	Description string    `pg:"description,use_zero"`
	Date        time.Time `pg:"date,use_zero"`
	Views       int       `pg:"views,use_zero"`
	CategoryID  int       `pg:"category_id,use_zero"`
	AuthorID    int       `pg:"author_id,use_zero"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
	Author   *User     `pg:"fk:author_id,rel:has-one"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int    `pg:"id,pk"`
	Username     string `pg:"username,use_zero"`
	Role         string `pg:"role,use_zero"`
	PasswordHash string `pg:"password_hash,use_zero"`

	News []News `pg:"rel:has-many,join_fk:author_id"`
}
