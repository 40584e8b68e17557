package db

import (
	"fmt"
	"math"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type Op string

const (
	OpEq  Op = "="
	OpNeq Op = "!="
	OpGt  Op = ">"
	OpGte Op = ">="
	OpLt  Op = "<"
	OpLte Op = "<="
)

func (o Op) valid() bool {
	switch o {
	case OpEq, OpNeq, OpGt, OpGte, OpLt, OpLte:
		return true
	}
	return false
}

type Filter struct {
	Column string
	Op     Op
	Value  any
}

type Order struct {
	Column string
	Desc   bool
}

// Query describes a selection of rows. It is a value: every builder method returns a copy,
// so a base query can be shared and refined independently. Nothing is read until the query
// is passed to a Selection or Repository method that materializes it.
type Query struct {
	filters   []Filter
	orders    []Order
	relations []string
	limit     int
	offset    int
}

func NewQuery() Query {
	return Query{}
}

func (q Query) Where(column string, op Op, value any) Query {
	q.filters = append(q.filters[:len(q.filters):len(q.filters)], Filter{Column: column, Op: op, Value: value})
	return q
}

func (q Query) OrderBy(column string, desc bool) Query {
	q.orders = append(q.orders[:len(q.orders):len(q.orders)], Order{Column: column, Desc: desc})
	return q
}

func (q Query) With(relations ...string) Query {
	q.relations = append(q.relations[:len(q.relations):len(q.relations)], relations...)
	return q
}

func (q Query) Limit(n int) Query {
	q.limit = n
	return q
}

func (q Query) Offset(n int) Query {
	q.offset = n
	return q
}

// Page applies 1-indexed windowing: it skips (page-1)*pageSize rows and takes pageSize.
func (q Query) Page(page, pageSize int) Query {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return q.Limit(0).Offset(0)
	}
	if page-1 > math.MaxInt/pageSize {
		return q.Limit(pageSize).Offset(math.MaxInt)
	}
	return q.Limit(pageSize).Offset((page - 1) * pageSize)
}

func (q Query) Filters() []Filter { return q.filters }
func (q Query) Orders() []Order   { return q.orders }
func (q Query) Relations() []string {
	return q.relations
}

// unpaged drops ordering and windowing, used for counting.
func (q Query) unpaged() Query {
	q.orders, q.limit, q.offset = nil, 0, 0
	return q
}

func (q Query) validate() error {
	for _, f := range q.filters {
		if !f.Op.valid() {
			return fmt.Errorf("unsupported operator %q on column %q", f.Op, f.Column)
		}
	}
	return nil
}

// apply translates the query onto a go-pg query against the model aliased as "t".
func (q Query) apply(oq *orm.Query) (*orm.Query, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	for _, rel := range q.relations {
		oq = oq.Relation(rel)
	}

	for _, f := range q.filters {
		oq = oq.Where("?.? "+string(f.Op)+" ?", pg.Ident("t"), pg.Ident(f.Column), f.Value)
	}

	for _, o := range q.orders {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		oq = oq.OrderExpr("?.? "+dir, pg.Ident("t"), pg.Ident(o.Column))
	}

	if q.limit > 0 {
		oq = oq.Limit(q.limit)
	}
	if q.offset > 0 {
		oq = oq.Offset(q.offset)
	}

	return oq, nil
}
