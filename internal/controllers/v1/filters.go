package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// nameFilters applies the string query filters used by the category
// endpoints. Set but empty parameters filter for the empty string.
func nameFilters(db, query *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if note != "" {
		query = query.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where("note = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

// searchFilter applies the free text search used by the expense and
// summary endpoints. It searches descriptions and categories, matching
// the search the history view of the previous tool offered.
func searchFilter(db, query *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return query
	}

	return query.Where(
		db.Where("description LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
			db.Where("category LIKE ?", fmt.Sprintf("%%%s%%", search)),
		),
	)
}
