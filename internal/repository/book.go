package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/snnyvrz/bookshelf/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const RecentBooksLimit = 15

type BookRepository interface {
	Recent(ctx context.Context, limit int) ([]model.Book, error)
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	ToggleRead(ctx context.Context, id uint) error
	Create(ctx context.Context, book *model.Book, authorName, genreName string) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) Recent(ctx context.Context, limit int) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genre").
		Order("added DESC").
		Order("id DESC").
		Limit(limit).
		Find(&books).Error; err != nil {

		return nil, err
	}
	return books, nil
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genre").
		First(&book, id).Error; err != nil {

		return nil, err
	}
	return &book, nil
}

// ToggleRead flips is_read in a single statement. A missing book yields
// gorm.ErrRecordNotFound.
func (r *GormBookRepository) ToggleRead(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", id).
		UpdateColumn("is_read", gorm.Expr("NOT is_read"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Create stores book together with its author and genre, creating either of
// them when no row with that name exists yet. Everything happens in one
// transaction: a failure leaves no new author or genre behind.
func (r *GormBookRepository) Create(ctx context.Context, book *model.Book, authorName, genreName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.Book{}).Where("name = ?", book.Name).Count(&existing).Error; err != nil {
			return fmt.Errorf("check book name: %w", err)
		}
		if existing > 0 {
			return ErrDuplicateBook
		}

		author, err := findOrCreateAuthor(tx, authorName)
		if err != nil {
			return err
		}

		genre, err := findOrCreateGenre(tx, genreName)
		if err != nil {
			return err
		}

		book.AuthorID = &author.ID
		book.GenreID = &genre.ID

		if err := tx.Omit(clause.Associations).Create(book).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateBook
			}
			return fmt.Errorf("insert book: %w", err)
		}

		book.Author = author
		book.Genre = genre
		return nil
	})
}

func findOrCreateAuthor(tx *gorm.DB, fullname string) (*model.Author, error) {
	var author model.Author
	err := tx.Where("fullname = ?", fullname).First(&author).Error
	if err == nil {
		return &author, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find author: %w", err)
	}

	author = model.Author{Fullname: fullname}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&author).Error; err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	// Another writer inserted the same name first.
	if author.ID == 0 {
		if err := tx.Where("fullname = ?", fullname).First(&author).Error; err != nil {
			return nil, fmt.Errorf("find author: %w", err)
		}
	}
	return &author, nil
}

func findOrCreateGenre(tx *gorm.DB, name string) (*model.Genre, error) {
	var genre model.Genre
	err := tx.Where("name = ?", name).First(&genre).Error
	if err == nil {
		return &genre, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find genre: %w", err)
	}

	genre = model.Genre{Name: name}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&genre).Error; err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	if genre.ID == 0 {
		if err := tx.Where("name = ?", name).First(&genre).Error; err != nil {
			return nil, fmt.Errorf("find genre: %w", err)
		}
	}
	return &genre, nil
}
