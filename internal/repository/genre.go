package repository

import (
	"context"

	"github.com/snnyvrz/bookshelf/internal/model"
	"gorm.io/gorm"
)

type GenreRepository interface {
	List(ctx context.Context) ([]model.Genre, error)
	FindWithBooks(ctx context.Context, id uint) (*model.Genre, error)
}

type GormGenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GormGenreRepository {
	return &GormGenreRepository{db: db}
}

func (r *GormGenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if err := r.db.WithContext(ctx).Order("id").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *GormGenreRepository) FindWithBooks(ctx context.Context, id uint) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).
		Preload("Books", newestFirst).
		Preload("Books.Author").
		First(&genre, id).Error; err != nil {

		return nil, err
	}
	return &genre, nil
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("added DESC").Order("id DESC")
}
