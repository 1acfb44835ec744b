package repository

import (
	"context"
	"testing"
	"time"

	"github.com/snnyvrz/bookshelf/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormGenreRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGenreRepository(db)

	testutil.SeedGenre(t, db, "Sci-Fi")
	testutil.SeedGenre(t, db, "Fantasy")

	genres, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 2)
}

func TestGormGenreRepository_FindWithBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	author := testutil.SeedAuthor(t, db, "Frank Herbert")
	scifi := testutil.SeedGenre(t, db, "Sci-Fi")
	empty := testutil.SeedGenre(t, db, "Poetry")

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	testutil.SeedBook(t, db, &author, &scifi, "Dune", base)
	testutil.SeedBook(t, db, &author, &scifi, "Dune Messiah", base.Add(time.Hour))

	genre, err := repo.FindWithBooks(ctx, scifi.ID)
	require.NoError(t, err)
	require.Len(t, genre.Books, 2)
	require.Equal(t, "Dune Messiah", genre.Books[0].Name)
	require.NotNil(t, genre.Books[0].Author)
	require.Equal(t, "Frank Herbert", genre.Books[0].Author.Fullname)

	genre, err = repo.FindWithBooks(ctx, empty.ID)
	require.NoError(t, err)
	require.Empty(t, genre.Books)

	_, err = repo.FindWithBooks(ctx, empty.ID+100)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
