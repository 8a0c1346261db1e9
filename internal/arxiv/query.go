// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"strings"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// fieldPrefixes maps a search field to its arXiv query-language prefix.
var fieldPrefixes = map[types.SearchField]string{
	types.FieldAll:      "all",
	types.FieldTitle:    "ti",
	types.FieldAbstract: "abs",
	types.FieldAuthor:   "au",
}

// BuildQuery constructs the search_query parameter from the request.
//
// The query text is wrapped in a field-prefixed quoted clause; categories
// are ORed inside one parenthesized clause in input order; an author
// constraint is always ANDed on, even when the field clause is already au:.
// Clauses are joined with single spaces.
//
// Known limitation: the query text is interpolated into the quoted clause
// without escaping, so a double quote inside the query corrupts the clause.
func BuildQuery(req types.SearchRequest) string {
	prefix, ok := fieldPrefixes[req.SearchIn]
	if !ok {
		prefix = "all"
	}

	clauses := []string{prefix + `:"` + req.Query + `"`}

	if len(req.Categories) > 0 {
		cats := make([]string, len(req.Categories))
		for i, c := range req.Categories {
			cats[i] = "cat:" + c
		}
		clauses = append(clauses, "AND ("+strings.Join(cats, " OR ")+")")
	}

	if req.Authors != "" {
		clauses = append(clauses, `AND au:"`+req.Authors+`"`)
	}

	return strings.Join(clauses, " ")
}
