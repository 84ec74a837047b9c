package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetGameTypes(ctx context.Context) ([]*domain.GameType, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*domain.GameType)
	return v, args.Error(1)
}

func (m *mockRepo) ReplaceGameTypes(ctx context.Context, gameTypes []*domain.GameType) error {
	return m.Called(ctx, gameTypes).Error(0)
}

func (m *mockRepo) GetGalleryImages(ctx context.Context) ([]*domain.GalleryImage, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*domain.GalleryImage)
	return v, args.Error(1)
}

func (m *mockRepo) CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	args := m.Called(ctx, img)
	v, _ := args.Get(0).(*domain.GalleryImage)
	return v, args.Error(1)
}

func (m *mockRepo) ReplaceGalleryImages(ctx context.Context, images []*domain.GalleryImage) error {
	return m.Called(ctx, images).Error(0)
}

func (m *mockRepo) GetSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).(*domain.Settings)
	return v, args.Error(1)
}

func (m *mockRepo) UpsertSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	args := m.Called(ctx, settings)
	v, _ := args.Get(0).(*domain.Settings)
	return v, args.Error(1)
}

// inlineTx runs fn without a real transaction
type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
