package catalog

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestRepository_GetGameTypes(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM game_types ORDER BY sort_order ASC, id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "icon", "available", "popular_games", "sort_order"}).
			AddRow("vr", "VR Gaming", "Immersive", "🥽", true, "{\"Beat Saber\",\"Half-Life: Alyx\"}", int64(4)))

	gameTypes, err := repo.GetGameTypes(context.Background())
	require.NoError(t, err)

	require.Len(t, gameTypes, 1)
	assert.Equal(t, "vr", gameTypes[0].ID)
	assert.Equal(t, []string{"Beat Saber", "Half-Life: Alyx"}, gameTypes[0].PopularGames)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceGameTypes(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM game_types")).WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO game_types (id,name,description,icon,available,popular_games,sort_order) VALUES ($1,$2,$3,$4,$5,$6,$7),($8,")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.ReplaceGameTypes(context.Background(), []*domain.GameType{
		{ID: "vr", Name: "VR", PopularGames: []string{"Beat Saber"}},
		{ID: "xbox", Name: "Xbox", PopularGames: []string{"Halo"}, SortOrder: 1},
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateGalleryImage(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO gallery_images (title,category,description,image_data) VALUES ($1,$2,$3,$4) RETURNING id, created_at")).
		WithArgs("Tournament", "events", "Finals night", "https://img/1.jpg").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), created))

	img, err := repo.CreateGalleryImage(context.Background(), &domain.GalleryImage{
		Title:       "Tournament",
		Category:    "events",
		Description: "Finals night",
		ImageData:   "https://img/1.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, id, img.ID)
	assert.Equal(t, created, img.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetSettings(t *testing.T) {
	repo, mock := newRepo(t)
	updated := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT pricing, contact, updated_at FROM settings WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"pricing", "contact", "updated_at"}).AddRow(
			[]byte(`{"individual":120,"group":100,"group_min_size":3}`),
			[]byte(`{"address":"123 Gaming Street","social":{"facebook":"#"}}`),
			updated,
		))

	settings, err := repo.GetSettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 120.0, settings.Pricing.Individual)
	assert.Equal(t, 3, settings.Pricing.GroupMinSize)
	assert.Equal(t, "#", settings.Contact.Social["facebook"])
	assert.Equal(t, updated, settings.UpdatedAt)
}

func TestRepository_GetSettings_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM settings")).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSettings(context.Background())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestRepository_UpsertSettings(t *testing.T) {
	repo, mock := newRepo(t)
	updated := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (id) DO UPDATE")).
		WithArgs(1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))

	settings, err := repo.UpsertSettings(context.Background(), &domain.Settings{
		Pricing: domain.PricingInfo{Individual: 120},
	})
	require.NoError(t, err)

	assert.Equal(t, updated, settings.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
