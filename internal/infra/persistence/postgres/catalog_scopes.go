package postgres

import (
	"strings"

	"healthtrack/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownedBy scopes a catalog statement to admin rows when ownerID is nil and to one user's rows otherwise.
func ownedBy(ownerID *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID == nil {
			return db.Where("owner_id IS NULL")
		}

		return db.Where("owner_id = ?", *ownerID)
	}
}

// visibleTo scopes a catalog statement to rows userID may read.
func visibleTo(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("((owner_id IS NULL AND visibility = ?) OR owner_id = ?)", string(entity.VisibilityPublic), userID)
	}
}

// catalogFilter applies scope, kind and name filters. kindColumn and nameColumn differ between meals and exercises.
func catalogFilter(filter entity.CatalogFilter, kindColumn, nameColumn string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch filter.Scope {
		case entity.ScopeAdminPublic:
			db = db.Where("owner_id IS NULL AND visibility = ?", string(entity.VisibilityPublic))
		case entity.ScopePersonal:
			db = db.Where("owner_id = ?", filter.UserID)
		case entity.ScopeAdminAll:
			db = db.Where("owner_id IS NULL")
		default:
			db = db.Scopes(visibleTo(filter.UserID))
		}

		if filter.Kind != "" {
			db = db.Where(kindColumn+" = ?", filter.Kind)
		}
		if q := strings.TrimSpace(filter.Query); q != "" {
			db = db.Where(nameColumn+" ILIKE ?", likePattern(q))
		}

		return db
	}
}
