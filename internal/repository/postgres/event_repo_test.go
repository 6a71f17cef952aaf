package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"weddingly/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestEventRepository_ReplaceForSite(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	events := []*domain.Event{
		{Title: "Ceremony", Date: date, Time: "16:00", Location: "Chapel", Address: "1 Hill Rd", Position: 0, CreatedAt: now, UpdatedAt: now},
		{Title: "Reception", Date: date, Time: "19:00", Location: "Barn", Address: "2 Hill Rd", Position: 1, CreatedAt: now, UpdatedAt: now},
	}

	t.Run("deletes then inserts in order inside one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM events WHERE site_id`).
			WithArgs("site-uuid-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectQuery(`INSERT INTO events`).
			WithArgs("site-uuid-1", "Ceremony", date, "16:00", "Chapel", "1 Hill Rd", 0, now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("event-uuid-1"))
		mock.ExpectQuery(`INSERT INTO events`).
			WithArgs("site-uuid-1", "Reception", date, "19:00", "Barn", "2 Hill Rd", 1, now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("event-uuid-2"))
		mock.ExpectCommit()

		repo := NewEventRepository(db)
		err = repo.ReplaceForSite(ctx, "site-uuid-1", events)
		require.NoError(t, err)
		require.Equal(t, "event-uuid-1", events[0].ID)
		require.Equal(t, "event-uuid-2", events[1].ID)
		require.Equal(t, "site-uuid-1", events[0].SiteID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty list only deletes", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM events WHERE site_id`).
			WithArgs("site-uuid-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		repo := NewEventRepository(db)
		err = repo.ReplaceForSite(ctx, "site-uuid-1", nil)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM events WHERE site_id`).
			WithArgs("site-uuid-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`INSERT INTO events`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewEventRepository(db)
		err = repo.ReplaceForSite(ctx, "site-uuid-1", events[:1])
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM events WHERE site_id`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewEventRepository(db)
		err = repo.ReplaceForSite(ctx, "site-uuid-1", events)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_ListBySiteID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "site_id", "title", "date", "time", "location", "address", "position", "created_at", "updated_at"}

	t.Run("returns events ordered by position", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(cols).
			AddRow("event-uuid-1", "site-uuid-1", "Ceremony", date, "16:00", "Chapel", "1 Hill Rd", 0, now, now).
			AddRow("event-uuid-2", "site-uuid-1", "Reception", date, "19:00", "Barn", "2 Hill Rd", 1, now, now)
		mock.ExpectQuery(`FROM events`).
			WithArgs("site-uuid-1").
			WillReturnRows(rows)

		repo := NewEventRepository(db)
		events, err := repo.ListBySiteID(ctx, "site-uuid-1")
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, "Ceremony", events[0].Title)
		require.Equal(t, 0, events[0].Position)
		require.Equal(t, 1, events[1].Position)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no events returns empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM events`).
			WithArgs("site-uuid-1").
			WillReturnRows(sqlmock.NewRows(cols))

		repo := NewEventRepository(db)
		events, err := repo.ListBySiteID(ctx, "site-uuid-1")
		require.NoError(t, err)
		require.NotNil(t, events)
		require.Empty(t, events)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
