package store

import (
	"net/url"
	"strconv"
)

// Condition is one filter in PostgREST operator syntax (eq.X, gte.X, …).
// Conditions accumulate: two range bounds on the same column produce two
// query parameters, never an overwrite.
type Condition struct {
	Column string
	Op     string
	Value  string
}

// Query describes a filtered select against one table, including the
// PostgREST embedded-resource syntax for join expansion
// (select=*,clienti(nome)).
type Query struct {
	Table      string
	SelectCols string
	Conditions []Condition
	OrderBy    string
	Descending bool
	LimitRows  int
	Single     bool
}

// NewQuery starts a query against table with the default select of all
// columns.
func NewQuery(table string) Query {
	return Query{Table: table, SelectCols: "*"}
}

// Select restricts the returned columns; embedded resources are expressed in
// PostgREST syntax, e.g. "*,categorie(nome,colore)".
func (q Query) Select(cols string) Query {
	q.SelectCols = cols
	return q
}

// Eq appends an equality condition.
func (q Query) Eq(column, value string) Query {
	q.Conditions = append(q.Conditions, Condition{Column: column, Op: "eq", Value: value})
	return q
}

// Gte appends a lower range bound.
func (q Query) Gte(column, value string) Query {
	q.Conditions = append(q.Conditions, Condition{Column: column, Op: "gte", Value: value})
	return q
}

// Lte appends an upper range bound.
func (q Query) Lte(column, value string) Query {
	q.Conditions = append(q.Conditions, Condition{Column: column, Op: "lte", Value: value})
	return q
}

// Order sorts by column, optionally descending.
func (q Query) Order(column string, descending bool) Query {
	q.OrderBy = column
	q.Descending = descending
	return q
}

// Limit caps the number of returned rows.
func (q Query) Limit(n int) Query {
	q.LimitRows = n
	return q
}

// One marks the query as a single-object request.
func (q Query) One() Query {
	q.Single = true
	return q
}

// Encode renders the query string. Repeated conditions on the same column are
// emitted as repeated parameters, which PostgREST combines with AND.
func (q Query) Encode() string {
	v := url.Values{}
	if q.SelectCols != "" {
		v.Set("select", q.SelectCols)
	}
	for _, c := range q.Conditions {
		v.Add(c.Column, c.Op+"."+c.Value)
	}
	if q.OrderBy != "" {
		order := q.OrderBy
		if q.Descending {
			order += ".desc"
		}
		v.Set("order", order)
	}
	if q.LimitRows > 0 {
		v.Set("limit", strconv.Itoa(q.LimitRows))
	}
	return v.Encode()
}
