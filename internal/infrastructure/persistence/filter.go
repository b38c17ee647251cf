package persistence

import (
	"regexp"
	"strings"

	"github.com/electrostore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// identifierPattern matches safe column identifiers for ORDER BY clauses
var identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// applyPagination applies pagination and ordering from a shared.Filter.
// OrderBy values that are not plain column identifiers fall back to
// defaultOrder to keep user input out of the SQL text.
func applyPagination(q *gorm.DB, filter shared.Filter, defaultOrder string) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		q = q.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" && identifierPattern.MatchString(filter.OrderBy) {
		dir := "ASC"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "DESC"
		}
		return q.Order(filter.OrderBy + " " + dir)
	}

	if defaultOrder != "" {
		q = q.Order(defaultOrder)
	}
	return q
}
