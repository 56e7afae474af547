package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Player{},
		&Game{},
		&GameNight{},
		&GameSession{},
		&GameResult{},
		&Comment{},
		&ShareLink{},
	)
}

// isUniqueViolation reports whether err is a unique-constraint violation.
// Postgres surfaces a pgconn.PgError; the sqlite driver used in tests goes
// through gorm's error translation instead.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return true
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}
