package repository

import (
	"time"

	"gorm.io/gorm"
)

// deactivateRow flips is_active off and refreshes updated_at for a single row.
// Returns the number of rows matched so callers can distinguish a missing id.
func deactivateRow(db *gorm.DB, model interface{}, id uint) (int64, error) {
	result := db.Model(model).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	return result.RowsAffected, result.Error
}
