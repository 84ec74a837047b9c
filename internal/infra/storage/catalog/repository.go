package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	"github.com/m04kA/GameLounge-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GameLounge-BookingService/pkg/psqlbuilder"
)

const (
	tableGameTypes     = "game_types"
	tableGalleryImages = "gallery_images"
	tableSettings      = "settings"

	// settings is a single-row table
	settingsRowID = 1
)

// Repository storefront catalog storage: game types, gallery and settings
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetGameTypes returns game types in display order
func (r *Repository) GetGameTypes(ctx context.Context) ([]*domain.GameType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"icon",
		"available",
		"popular_games",
		"sort_order",
	).
		From(tableGameTypes).
		OrderBy("sort_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetGameTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetGameTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	gameTypes := make([]*domain.GameType, 0)
	for rows.Next() {
		var gt domain.GameType
		if err := rows.Scan(
			&gt.ID,
			&gt.Name,
			&gt.Description,
			&gt.Icon,
			&gt.Available,
			pq.Array(&gt.PopularGames),
			&gt.SortOrder,
		); err != nil {
			return nil, fmt.Errorf("%w: GetGameTypes - scan game type: %v", ErrScanRow, err)
		}
		gameTypes = append(gameTypes, &gt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetGameTypes - rows error: %v", ErrScanRow, err)
	}

	return gameTypes, nil
}

// ReplaceGameTypes deletes all game types and inserts the given ones.
// Should run inside a transaction.
func (r *Repository) ReplaceGameTypes(ctx context.Context, gameTypes []*domain.GameType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if err := r.deleteAll(ctx, executor, tableGameTypes); err != nil {
		return err
	}
	if len(gameTypes) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert(tableGameTypes).
		Columns("id", "name", "description", "icon", "available", "popular_games", "sort_order")
	for _, gt := range gameTypes {
		insert = insert.Values(gt.ID, gt.Name, gt.Description, gt.Icon, gt.Available, pq.Array(gt.PopularGames), gt.SortOrder)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceGameTypes - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceGameTypes - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetGalleryImages returns gallery images, newest first
func (r *Repository) GetGalleryImages(ctx context.Context) ([]*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title", "category", "description", "image_data", "created_at").
		From(tableGalleryImages).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetGalleryImages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetGalleryImages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		var (
			img       domain.GalleryImage
			createdAt sql.NullTime
		)
		if err := rows.Scan(&img.ID, &img.Title, &img.Category, &img.Description, &img.ImageData, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetGalleryImages - scan image: %v", ErrScanRow, err)
		}
		img.CreatedAt = createdAt.Time
		images = append(images, &img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetGalleryImages - rows error: %v", ErrScanRow, err)
	}

	return images, nil
}

// CreateGalleryImage inserts an image and fills its id and creation time
func (r *Repository) CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableGalleryImages).
		Columns("title", "category", "description", "image_data").
		Values(img.Title, img.Category, img.Description, img.ImageData).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateGalleryImage - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&img.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateGalleryImage - execute insert: %v", ErrExecQuery, err)
	}
	img.CreatedAt = createdAt.Time

	return img, nil
}

// ReplaceGalleryImages deletes all images and inserts the given ones.
// Should run inside a transaction.
func (r *Repository) ReplaceGalleryImages(ctx context.Context, images []*domain.GalleryImage) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if err := r.deleteAll(ctx, executor, tableGalleryImages); err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert(tableGalleryImages).
		Columns("title", "category", "description", "image_data")
	for _, img := range images {
		insert = insert.Values(img.Title, img.Category, img.Description, img.ImageData)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceGalleryImages - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceGalleryImages - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetSettings returns the storefront settings
func (r *Repository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("pricing", "contact", "updated_at").
		From(tableSettings).
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	var (
		pricing, contact []byte
		updatedAt        sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&pricing, &contact, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - scan settings: %v", ErrScanRow, err)
	}

	settings := &domain.Settings{UpdatedAt: updatedAt.Time}
	if err := json.Unmarshal(pricing, &settings.Pricing); err != nil {
		return nil, fmt.Errorf("%w: GetSettings - decode pricing: %v", ErrEncode, err)
	}
	if err := json.Unmarshal(contact, &settings.Contact); err != nil {
		return nil, fmt.Errorf("%w: GetSettings - decode contact: %v", ErrEncode, err)
	}

	return settings, nil
}

// UpsertSettings stores the settings row
func (r *Repository) UpsertSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pricing, err := json.Marshal(settings.Pricing)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSettings - encode pricing: %v", ErrEncode, err)
	}
	contact, err := json.Marshal(settings.Contact)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSettings - encode contact: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(tableSettings).
		Columns("id", "pricing", "contact").
		Values(settingsRowID, pricing, contact).
		Suffix("ON CONFLICT (id) DO UPDATE SET pricing = EXCLUDED.pricing, contact = EXCLUDED.contact, updated_at = NOW() RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSettings - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertSettings - execute upsert: %v", ErrExecQuery, err)
	}
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}

func (r *Repository) deleteAll(ctx context.Context, executor DBExecutor, table string) error {
	query, args, err := psqlbuilder.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("%w: delete %s - build query: %v", ErrBuildQuery, table, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: delete %s - execute: %v", ErrExecQuery, table, err)
	}

	return nil
}
