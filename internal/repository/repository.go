package repository

import (
	"gorm.io/gorm"

	"github.com/oggyb/muzz-dating/internal/logger"
)

// storeMissing reports (and warns) when no database handle was configured.
// Callers degrade: reads return empty results, writes become no-ops.
func storeMissing(database *gorm.DB, op string) bool {
	if database != nil {
		return false
	}
	logger.Warn("[Database] database not available", "op", op)
	return true
}
