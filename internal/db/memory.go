package db

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"
)

type foreignKey struct {
	column string
	ref    string
}

var (
	uniqueColumns = map[string][]string{
		Tables.Category.Name: {Columns.Category.Name},
		Tables.User.Name:     {Columns.User.Username},
	}
	foreignKeys = map[string][]foreignKey{
		Tables.News.Name: {
			{column: Columns.News.CategoryID, ref: Tables.Category.Name},
			{column: Columns.News.AuthorID, ref: Tables.User.Name},
		},
	}
)

// memory is an in-process engine enforcing the same unique, foreign key (with cascading
// deletes) and row existence rules as the PostgreSQL schema.
type memory struct {
	mu     sync.RWMutex
	tables map[string]map[int]Entity
	seq    map[string]int
}

func newMemory() *memory {
	return &memory{
		tables: map[string]map[int]Entity{
			Tables.Category.Name: {},
			Tables.User.Name:     {},
			Tables.News.Name:     {},
		},
		seq: map[string]int{},
	}
}

func (m *memory) selectRows(table string, q Query) ([]Entity, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rows, ok := m.tables[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	var out []Entity
	for _, id := range slices.Sorted(maps.Keys(rows)) {
		row := rows[id]
		matched := true
		for _, f := range q.filters {
			if !matches(row.Value(f.Column), f.Op, f.Value) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, row)
		}
	}

	if len(q.orders) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, o := range q.orders {
				c := compare(out[i].Value(o.Column), out[j].Value(o.Column))
				if c == 0 {
					continue
				}
				if o.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}

	if q.offset > 0 {
		if q.offset >= len(out) {
			out = nil
		} else {
			out = out[q.offset:]
		}
	}
	if q.limit > 0 && q.limit < len(out) {
		out = out[:q.limit]
	}

	result := make([]Entity, len(out))
	for i, row := range out {
		result[i] = cloneEntity(row)
		for _, rel := range q.relations {
			if err := m.attach(result[i], rel); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// attach loads a relation of e. Caller holds the read lock.
func (m *memory) attach(e Entity, relation string) error {
	switch v := e.(type) {
	case *News:
		switch relation {
		case Columns.News.Category:
			if c, ok := m.tables[Tables.Category.Name][v.CategoryID]; ok {
				v.Category = cloneEntity(c).(*Category)
			}
			return nil
		case Columns.News.Author:
			if u, ok := m.tables[Tables.User.Name][v.AuthorID]; ok {
				v.Author = cloneEntity(u).(*User)
			}
			return nil
		}
	case *Category:
		if relation == Columns.Category.News {
			v.News = m.newsBy(Columns.News.CategoryID, v.ID)
			return nil
		}
	case *User:
		if relation == Columns.User.News {
			v.News = m.newsBy(Columns.News.AuthorID, v.ID)
			return nil
		}
	}

	return fmt.Errorf("unknown relation %q on %s", relation, e.Table())
}

func (m *memory) newsBy(column string, id int) []News {
	rows := m.tables[Tables.News.Name]
	list := []News{}
	for _, key := range slices.Sorted(maps.Keys(rows)) {
		if rows[key].Value(column) == id {
			list = append(list, *cloneEntity(rows[key]).(*News))
		}
	}
	return list
}

// commit applies staged mutations on a copy of the tables and swaps it in only when
// every mutation succeeded.
func (m *memory) commit(staged []mutation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tables := make(map[string]map[int]Entity, len(m.tables))
	for name, rows := range m.tables {
		tables[name] = maps.Clone(rows)
	}
	seq := maps.Clone(m.seq)

	// written back to the staged entities once the commit succeeds
	var writeBacks []func()
	for _, mu := range staged {
		table := mu.entity.Table()
		rows := tables[table]

		switch mu.kind {
		case mutationInsert:
			id := mu.entity.PK()
			if id == 0 {
				id = seq[table] + 1
			} else if _, ok := rows[id]; ok {
				return fmt.Errorf("insert %s: %w: %s_pkey", table, ErrUniqueViolation, table)
			}
			if id > seq[table] {
				seq[table] = id
			}
			row := cloneEntity(mu.entity)
			row.SetPK(id)
			if err := checkRow(tables, mu.kind, row); err != nil {
				return err
			}
			rows[id] = row
			entity := mu.entity
			writeBacks = append(writeBacks, func() { entity.SetPK(id) })
		case mutationUpdate:
			stored, ok := rows[mu.entity.PK()]
			if !ok {
				return fmt.Errorf("update %s id=%d: %w", table, mu.entity.PK(), ErrNoRows)
			}
			var row Entity
			if len(mu.columns) > 0 {
				row = cloneEntity(stored)
				for _, col := range mu.columns {
					row.SetValue(col, mu.entity.Value(col))
				}
			} else {
				row = cloneEntity(mu.entity)
			}
			if err := checkRow(tables, mu.kind, row); err != nil {
				return err
			}
			rows[row.PK()] = row
		case mutationIncrement:
			stored, ok := rows[mu.entity.PK()]
			if !ok {
				return fmt.Errorf("increment %s id=%d: %w", table, mu.entity.PK(), ErrNoRows)
			}
			col := mu.columns[0]
			current, ok := stored.Value(col).(int)
			if !ok {
				return fmt.Errorf("increment %s: column %q is not an integer", table, col)
			}
			row := cloneEntity(stored)
			row.SetValue(col, current+1)
			rows[row.PK()] = row
			entity := mu.entity
			writeBacks = append(writeBacks, func() { entity.SetValue(col, current+1) })
		case mutationDelete:
			if _, ok := rows[mu.entity.PK()]; !ok {
				return fmt.Errorf("delete %s id=%d: %w", table, mu.entity.PK(), ErrNoRows)
			}
			deleteCascade(tables, table, mu.entity.PK())
		default:
			return fmt.Errorf("unknown mutation %d", mu.kind)
		}
	}

	m.tables = tables
	m.seq = seq

	for _, apply := range writeBacks {
		apply()
	}

	return nil
}

func checkRow(tables map[string]map[int]Entity, kind mutationKind, row Entity) error {
	table := row.Table()

	for _, col := range uniqueColumns[table] {
		value := row.Value(col)
		for id, other := range tables[table] {
			if id != row.PK() && other.Value(col) == value {
				return fmt.Errorf("%s %s: %w: %s_%s_key", kind, table, ErrUniqueViolation, table, col)
			}
		}
	}

	for _, fk := range foreignKeys[table] {
		ref, _ := row.Value(fk.column).(int)
		if _, ok := tables[fk.ref][ref]; !ok {
			return fmt.Errorf("%s %s: %w: %s_%s_fkey", kind, table, ErrForeignKeyViolation, table, fk.column)
		}
	}

	return nil
}

// deleteCascade removes a row and every row referencing it.
func deleteCascade(tables map[string]map[int]Entity, table string, id int) {
	delete(tables[table], id)

	for child, fks := range foreignKeys {
		for _, fk := range fks {
			if fk.ref != table {
				continue
			}
			for childID, row := range tables[child] {
				if row.Value(fk.column) == id {
					deleteCascade(tables, child, childID)
				}
			}
		}
	}
}

// cloneEntity copies a row without its loaded relations.
func cloneEntity(e Entity) Entity {
	switch v := e.(type) {
	case *Category:
		c := *v
		c.News = nil
		return &c
	case *User:
		u := *v
		u.News = nil
		return &u
	case *News:
		n := *v
		n.Category, n.Author = nil, nil
		return &n
	}
	panic(fmt.Sprintf("db: unsupported entity %T", e))
}

func matches(value any, op Op, operand any) bool {
	c := compare(value, operand)
	switch op {
	case OpEq:
		return c == 0
	case OpNeq:
		return c != 0
	case OpGt:
		return c > 0
	case OpGte:
		return c >= 0
	case OpLt:
		return c < 0
	case OpLte:
		return c <= 0
	}
	return false
}

// compare orders column values of the same kind. Values of different kinds compare unequal.
func compare(a, b any) int {
	switch x := a.(type) {
	case int:
		if y, ok := toInt(b); ok {
			return cmp.Compare(x, y)
		}
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok && x == y {
			return 0
		}
	}
	return 1
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	}
	return 0, false
}
