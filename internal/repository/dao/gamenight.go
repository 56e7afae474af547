package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrGameNightNotFound   = errors.New("game night not found")
	ErrGameSessionNotFound = errors.New("game session not found")
)

type GameNight struct {
	ID uint `gorm:"primaryKey"`

	Name        string    `gorm:"not null"`
	Date        time.Time `gorm:"not null;index"`
	GroupTag    string    `gorm:"index"`
	OwnerUserID uint      `gorm:"not null;index"`

	Sessions []GameSession `gorm:"foreignKey:GameNightID;constraint:OnDelete:CASCADE"`
	Comments []Comment     `gorm:"foreignKey:GameNightID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type GameSession struct {
	ID uint `gorm:"primaryKey"`

	GameID      uint `gorm:"not null;index"`
	Game        Game `gorm:"foreignKey:GameID"`
	GameNightID uint `gorm:"not null;index"`

	Results []GameResult `gorm:"foreignKey:GameSessionID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
}

type GameResult struct {
	ID uint `gorm:"primaryKey"`

	GameSessionID uint   `gorm:"not null;index"`
	PlayerID      uint   `gorm:"not null;index"`
	Player        Player `gorm:"foreignKey:PlayerID"`
	Position      int    `gorm:"not null"`
	Points        *int
	IsWinner      bool `gorm:"not null;default:false"`
}

type GameNightDAO struct {
	db *gorm.DB
}

func NewGameNightDAO(db *gorm.DB) *GameNightDAO {
	return &GameNightDAO{
		db: db,
	}
}

func (d *GameNightDAO) Insert(ctx context.Context, night GameNight) (GameNight, error) {
	result := d.db.WithContext(ctx).Create(&night)
	if result.Error != nil {
		return GameNight{}, result.Error
	}

	return night, nil
}

func (d *GameNightDAO) FindByID(ctx context.Context, ownerUserID, id uint) (GameNight, error) {
	var night GameNight

	result := d.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("game_sessions.created_at ASC")
		}).
		Preload("Sessions.Game").
		Preload("Sessions.Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("game_results.position ASC")
		}).
		Preload("Sessions.Results.Player").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		First(&night, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GameNight{}, ErrGameNightNotFound
		}

		return GameNight{}, result.Error
	}

	return night, nil
}

// FindScopedByID is FindByID narrowed by an optional group tag, used for
// share-link access. A tag mismatch is reported as not found.
func (d *GameNightDAO) FindScopedByID(ctx context.Context, ownerUserID uint, groupTag string, id uint) (GameNight, error) {
	night, err := d.FindByID(ctx, ownerUserID, id)
	if err != nil {
		return GameNight{}, err
	}

	if groupTag != "" && night.GroupTag != groupTag {
		return GameNight{}, ErrGameNightNotFound
	}

	return night, nil
}

func (d *GameNightDAO) FindAllByOwner(ctx context.Context, ownerUserID uint, groupTag string) ([]GameNight, error) {
	query := d.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID)
	if groupTag != "" {
		query = query.Where("group_tag = ?", groupTag)
	}

	var nights []GameNight
	result := query.Order("date DESC").Find(&nights)
	if result.Error != nil {
		return nil, result.Error
	}

	return nights, nil
}

// FindForStats loads the night -> session -> result -> player graph for the
// aggregation engine. Date bounds are inclusive and pre-expanded to local
// day boundaries by the caller.
func (d *GameNightDAO) FindForStats(ctx context.Context, ownerUserID uint, groupTag string, start, end *time.Time) ([]GameNight, error) {
	query := d.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID)
	if groupTag != "" {
		query = query.Where("group_tag = ?", groupTag)
	}
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date <= ?", *end)
	}

	var nights []GameNight
	result := query.
		Preload("Sessions").
		Preload("Sessions.Game").
		Preload("Sessions.Results").
		Preload("Sessions.Results.Player").
		Order("date DESC").
		Find(&nights)
	if result.Error != nil {
		return nil, result.Error
	}

	return nights, nil
}

func (d *GameNightDAO) Update(ctx context.Context, night GameNight) (GameNight, error) {
	result := d.db.WithContext(ctx).
		Model(&GameNight{}).
		Where("id = ? AND owner_user_id = ?", night.ID, night.OwnerUserID).
		Updates(map[string]interface{}{
			"name":      night.Name,
			"date":      night.Date,
			"group_tag": night.GroupTag,
		})
	if result.Error != nil {
		return GameNight{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GameNight{}, ErrGameNightNotFound
	}

	return d.FindByID(ctx, night.OwnerUserID, night.ID)
}

func (d *GameNightDAO) Delete(ctx context.Context, ownerUserID, id uint) error {
	var night GameNight

	result := d.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		First(&night, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrGameNightNotFound
		}

		return result.Error
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sessionIDs []uint
		if err := tx.Model(&GameSession{}).
			Where("game_night_id = ?", night.ID).
			Pluck("id", &sessionIDs).Error; err != nil {
			return err
		}

		if len(sessionIDs) > 0 {
			if err := tx.Where("game_session_id IN ?", sessionIDs).Delete(&GameResult{}).Error; err != nil {
				return err
			}
			if err := tx.Where("game_night_id = ?", night.ID).Delete(&GameSession{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("game_night_id = ?", night.ID).Delete(&Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&night).Error
	})
}

// InsertSession stores a session and its results in one transaction.
func (d *GameNightDAO) InsertSession(ctx context.Context, session GameSession) (GameSession, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&session).Error
	})
	if err != nil {
		return GameSession{}, err
	}

	return d.FindSessionByID(ctx, session.GameNightID, session.ID)
}

func (d *GameNightDAO) FindSessionByID(ctx context.Context, gameNightID, id uint) (GameSession, error) {
	var session GameSession

	result := d.db.WithContext(ctx).
		Where("game_night_id = ?", gameNightID).
		Preload("Game").
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("game_results.position ASC")
		}).
		Preload("Results.Player").
		First(&session, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GameSession{}, ErrGameSessionNotFound
		}

		return GameSession{}, result.Error
	}

	return session, nil
}

func (d *GameNightDAO) DeleteSession(ctx context.Context, gameNightID, id uint) error {
	var session GameSession

	result := d.db.WithContext(ctx).
		Where("game_night_id = ?", gameNightID).
		First(&session, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrGameSessionNotFound
		}

		return result.Error
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_session_id = ?", session.ID).Delete(&GameResult{}).Error; err != nil {
			return err
		}

		return tx.Delete(&session).Error
	})
}
