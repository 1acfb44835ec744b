package repository

import (
	"context"

	"github.com/snnyvrz/bookshelf/internal/model"
	"gorm.io/gorm"
)

type AuthorRepository interface {
	List(ctx context.Context) ([]model.Author, error)
	FindWithBooks(ctx context.Context, id uint) (*model.Author, error)
}

type GormAuthorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

func (r *GormAuthorRepository) List(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := r.db.WithContext(ctx).Order("id").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *GormAuthorRepository) FindWithBooks(ctx context.Context, id uint) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).
		Preload("Books", newestFirst).
		Preload("Books.Genre").
		First(&author, id).Error; err != nil {

		return nil, err
	}
	return &author, nil
}
