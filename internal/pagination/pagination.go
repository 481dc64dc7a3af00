// Package pagination applies optional page/page_size windows to record lists.
package pagination

import "gorm.io/gorm"

// MaxPageSize bounds page_size.
const MaxPageSize = 100

// PageRequest holds pagination parameters parsed from query strings.
// The zero value requests the whole list.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// IsSet reports whether the caller asked for a window at all.
func (p PageRequest) IsSet() bool {
	return p.Page > 0 || p.PageSize > 0
}

// Defaults fills in default values when only one of page or page_size was provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given
// page request. An unset request leaves the query untouched.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !req.IsSet() {
			return db
		}
		req.Defaults()
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}
