package db

// Entity is a row of one of the portal tables. It is implemented by pointers to the models.
type Entity interface {
	Table() string
	PK() int
	SetPK(id int)
	// Value returns the value of the column with the given name.
	Value(column string) any
	// SetValue assigns a column value; values of the wrong type are ignored.
	SetValue(column string, v any)
}

// entity ties a model type to its pointer implementing Entity.
type entity[T any] interface {
	*T
	Entity
}

func (c *Category) Table() string { return Tables.Category.Name }
func (c *Category) PK() int       { return c.ID }
func (c *Category) SetPK(id int)  { c.ID = id }

func (c *Category) Value(column string) any {
	switch column {
	case Columns.Category.ID:
		return c.ID
	case Columns.Category.Name:
		return c.Name
	}
	return nil
}

func (c *Category) SetValue(column string, v any) {
	switch column {
	case Columns.Category.ID:
		setTo(&c.ID, v)
	case Columns.Category.Name:
		setTo(&c.Name, v)
	}
}

func (u *User) Table() string { return Tables.User.Name }
func (u *User) PK() int       { return u.ID }
func (u *User) SetPK(id int)  { u.ID = id }

func (u *User) Value(column string) any {
	switch column {
	case Columns.User.ID:
		return u.ID
	case Columns.User.Username:
		return u.Username
	case Columns.User.Role:
		return u.Role
	case Columns.User.PasswordHash:
		return u.PasswordHash
	}
	return nil
}

func (u *User) SetValue(column string, v any) {
	switch column {
	case Columns.User.ID:
		setTo(&u.ID, v)
	case Columns.User.Username:
		setTo(&u.Username, v)
	case Columns.User.Role:
		setTo(&u.Role, v)
	case Columns.User.PasswordHash:
		setTo(&u.PasswordHash, v)
	}
}

func (n *News) Table() string { return Tables.News.Name }
func (n *News) PK() int       { return n.ID }
func (n *News) SetPK(id int)  { n.ID = id }

func (n *News) Value(column string) any {
	switch column {
	case Columns.News.ID:
		return n.ID
	case Columns.News.Title:
		return n.Title
	case Columns.News.Description:
		return n.Description
	case Columns.News.Date:
		return n.Date
	case Columns.News.Views:
		return n.Views
	case Columns.News.CategoryID:
		return n.CategoryID
	case Columns.News.AuthorID:
		return n.AuthorID
	}
	return nil
}

func (n *News) SetValue(column string, v any) {
	switch column {
	case Columns.News.ID:
		setTo(&n.ID, v)
	case Columns.News.Title:
		setTo(&n.Title, v)
	case Columns.News.Description:
		setTo(&n.Description, v)
	case Columns.News.Date:
		setTo(&n.Date, v)
	case Columns.News.Views:
		setTo(&n.Views, v)
	case Columns.News.CategoryID:
		setTo(&n.CategoryID, v)
	case Columns.News.AuthorID:
		setTo(&n.AuthorID, v)
	}
}

func setTo[V any](dst *V, v any) {
	if x, ok := v.(V); ok {
		*dst = x
	}
}
