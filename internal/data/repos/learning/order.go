package learning

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// insertionOrder sorts generated rows by batch position, then creation time.
func insertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: "index"}},
		{Column: clause.Column{Name: "created_at"}},
	}})
}
