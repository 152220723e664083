// Package filter translates typed client filters into storage predicates.
//
// Builders are pure and total: a nil or empty filter yields an empty
// Predicate, which matches every row. Ownership scoping is never part of a
// Predicate; repositories add it on top.
package filter

import (
	"strings"

	"gorm.io/gorm"
)

// Op is the comparison applied by a Clause
type Op string

// Supported operators
const (
	OpEq           Op = "eq"
	OpIn           Op = "in"
	OpContainsFold Op = "contains_fold"
)

// Clause is one condition on a column
type Clause struct {
	Field string
	Op    Op
	Value interface{}
}

// Predicate is a conjunction of clauses
type Predicate struct {
	Clauses []Clause
}

// IsEmpty reports whether the predicate matches everything
func (p Predicate) IsEmpty() bool {
	return len(p.Clauses) == 0
}

// Has reports whether the predicate constrains the given field
func (p Predicate) Has(field string) bool {
	for _, c := range p.Clauses {
		if c.Field == field {
			return true
		}
	}
	return false
}

func (p *Predicate) add(field string, op Op, value interface{}) {
	p.Clauses = append(p.Clauses, Clause{Field: field, Op: op, Value: value})
}

func (p *Predicate) containsFold(field string, value *string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return
	}
	p.add(field, OpContainsFold, *value)
}

func (p *Predicate) eqBool(field string, value *bool) {
	if value == nil {
		return
	}
	p.add(field, OpEq, *value)
}

func (p *Predicate) inInt32(field string, values []int32) {
	if len(values) == 0 {
		return
	}
	p.add(field, OpIn, append([]int32(nil), values...))
}

func (p *Predicate) inString(field string, values []string) {
	if len(values) == 0 {
		return
	}
	p.add(field, OpIn, append([]string(nil), values...))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Apply renders the predicate onto a gorm query. Columns are qualified with
// table when it is not empty. Field names come from this package's constants,
// never from client input.
func Apply(db *gorm.DB, table string, p Predicate) *gorm.DB {
	for _, c := range p.Clauses {
		col := c.Field
		if table != "" {
			col = table + "." + c.Field
		}

		switch c.Op {
		case OpEq:
			db = db.Where(col+" = ?", c.Value)
		case OpIn:
			db = db.Where(col+" IN ?", c.Value)
		case OpContainsFold:
			s, _ := c.Value.(string)
			pattern := "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
			db = db.Where("LOWER("+col+") LIKE ? ESCAPE '\\'", pattern)
		}
	}
	return db
}
