package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/pkg/dbmetrics"
	"github.com/glamspot/ArtistBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками расписания мастера.
// Настройки хранятся как jsonb blob произвольной полноты; типизацию и
// дефолты применяет domain.ResolveSettings, сюда они не просачиваются.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByArtistID возвращает raw настройки мастера.
// Отсутствие строки является нормальной ситуацией (мастер ничего не настраивал),
// вызывающая сторона резолвит nil в профиль по умолчанию.
func (r *Repository) GetByArtistID(ctx context.Context, artistID int64) (*domain.ArtistSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("settings").
		From("artist_settings").
		Where(squirrel.Eq{"artist_id": artistID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByArtistID - build select query: %v", ErrBuildQuery, err)
	}

	var blob []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByArtistID - scan settings: %v", ErrScanRow, err)
	}

	var raw domain.ArtistSettings
	if err := json.Unmarshal(blob, &raw); err != nil {
		// Нечитаемый legacy blob эквивалентен отсутствию настроек
		return nil, ErrSettingsNotFound
	}

	return &raw, nil
}

// Upsert сохраняет raw настройки мастера (insert или полная замена blob-а)
func (r *Repository) Upsert(ctx context.Context, artistID int64, raw *domain.ArtistSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blob, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: Upsert - marshal settings: %v", ErrEncodeSettings, err)
	}

	query, args, err := psqlbuilder.Insert("artist_settings").
		Columns("artist_id", "settings").
		Values(artistID, blob).
		Suffix("ON CONFLICT (artist_id) DO UPDATE SET settings = EXCLUDED.settings, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
