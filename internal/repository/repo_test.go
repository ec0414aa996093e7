package repository

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notes-backend/internal/entity"
)

var (
	userCols = []string{"id", "name", "password", "created_at"}
	noteCols = []string{"id", "title", "content", "created_at", "owner_id"}

	createdAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ts        = pgtype.Timestamptz{Time: createdAt, Valid: true}
)

func newRepoWithMock(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return New(mock), mock
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func ptr(s string) *string {
	return &s
}

func pgErr(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users \(name, password\)`).
		WithArgs("alice", "secret").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(1), "alice", "secret", ts))

	u, err := repo.CreateUser(context.Background(), "alice", "secret")
	require.NoError(t, err)

	assert.Equal(t, entity.User{ID: 1, Name: "alice", Password: "secret", CreatedAt: createdAt}, u)
}

func TestCreateUser_NameTaken(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "other").
		WillReturnError(pgErr(pgerrcode.UniqueViolation, usersNameKey))

	_, err := repo.CreateUser(context.Background(), "alice", "other")
	require.ErrorIs(t, err, entity.ErrUserAlreadyExists)
	require.ErrorIs(t, err, entity.ErrConstraintViolation)
}

func TestCreateUser_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "secret").
		WillReturnError(errors.New("db down"))

	_, err := repo.CreateUser(context.Background(), "alice", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "create user: db down")
}

func TestListUsers_Page(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM users\s+ORDER BY id\s+OFFSET \$1::bigint LIMIT \$2::integer`).
		WithArgs(int64(2), int32(2)).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(int64(3), "carol", "p3", ts).
			AddRow(int64(4), "dave", "p4", ts))

	users, err := repo.ListUsers(context.Background(), entity.Page{Offset: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(3), users[0].ID)
	assert.Equal(t, "dave", users[1].Name)
}

func TestListUsers_PastEnd(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM users`).
		WithArgs(int64(500), int32(100)).
		WillReturnRows(pgxmock.NewRows(userCols))

	users, err := repo.ListUsers(context.Background(), entity.Page{Offset: 500, Limit: 100})
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_OffsetBeyondInt32(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM users`).
		WithArgs(int64(4294967296), int32(100)).
		WillReturnRows(pgxmock.NewRows(userCols))

	users, err := repo.ListUsers(context.Background(), entity.Page{Offset: 4294967296, Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGetNotesByUserID_OffsetBeyondInt32(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM notes`).
		WithArgs(int64(1), int64(math.MaxInt64), int32(10)).
		WillReturnRows(pgxmock.NewRows(noteCols))

	notes, err := repo.GetNotesByUserID(context.Background(), 1, entity.Page{Offset: math.MaxInt64, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetUserByID(context.Background(), 9)
	require.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestGetUserByName_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM users\s+WHERE name = \$1`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(1), "alice", "secret", ts))

	u, err := repo.GetUserByName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "secret", u.Password)
}

func TestGetUserByName_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM users\s+WHERE name = \$1`).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetUserByName(context.Background(), "ghost")
	require.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestCreateNote_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO notes \(title, content, owner_id\)`).
		WithArgs("groceries", text("milk"), int64(1)).
		WillReturnRows(pgxmock.NewRows(noteCols).AddRow(int64(10), "groceries", text("milk"), ts, int64(1)))

	n, err := repo.CreateNote(context.Background(), 1, "groceries", ptr("milk"))
	require.NoError(t, err)

	assert.Equal(t, int64(10), n.ID)
	assert.Equal(t, int64(1), n.OwnerID)
	require.NotNil(t, n.Content)
	assert.Equal(t, "milk", *n.Content)
	assert.Equal(t, createdAt, n.CreatedAt)
}

func TestCreateNote_NullContent(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO notes`).
		WithArgs("", pgtype.Text{}, int64(1)).
		WillReturnRows(pgxmock.NewRows(noteCols).AddRow(int64(11), "", pgtype.Text{}, ts, int64(1)))

	n, err := repo.CreateNote(context.Background(), 1, "", nil)
	require.NoError(t, err)
	assert.Nil(t, n.Content)
}

func TestCreateNote_Violations(t *testing.T) {
	cases := map[string]struct {
		dbErr error
		want  error
	}{
		"title taken":   {pgErr(pgerrcode.UniqueViolation, notesTitleKey), entity.ErrNoteTitleTaken},
		"missing owner": {pgErr(pgerrcode.ForeignKeyViolation, notesOwnerIDFkey), entity.ErrUserNotFound},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)

			mock.ExpectQuery(`INSERT INTO notes`).
				WithArgs("groceries", pgtype.Text{}, int64(7)).
				WillReturnError(tc.dbErr)

			_, err := repo.CreateNote(context.Background(), 7, "groceries", nil)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGetNotesByUserID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM notes\s+WHERE owner_id = \$1\s+ORDER BY id\s+OFFSET \$2::bigint LIMIT \$3::integer`).
		WithArgs(int64(1), int64(0), int32(100)).
		WillReturnRows(pgxmock.NewRows(noteCols).
			AddRow(int64(10), "a", text("x"), ts, int64(1)).
			AddRow(int64(12), "b", pgtype.Text{}, ts, int64(1)))

	notes, err := repo.GetNotesByUserID(context.Background(), 1, entity.DefaultPage())
	require.NoError(t, err)
	require.Len(t, notes, 2)

	for _, n := range notes {
		assert.Equal(t, int64(1), n.OwnerID)
	}
	assert.Nil(t, notes[1].Content)
}

func TestGetNote_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM notes\s+WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetNote(context.Background(), 404)
	require.ErrorIs(t, err, entity.ErrNoteNotFound)
}

func TestUpdateNote_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`UPDATE notes\s+SET title = \$2, content = \$3\s+WHERE id = \$1`).
		WithArgs(int64(10), "renamed", text("new body")).
		WillReturnRows(pgxmock.NewRows(noteCols).AddRow(int64(10), "renamed", text("new body"), ts, int64(1)))

	n, err := repo.UpdateNote(context.Background(), 10, "renamed", ptr("new body"))
	require.NoError(t, err)

	assert.Equal(t, int64(10), n.ID)
	assert.Equal(t, int64(1), n.OwnerID)
	assert.Equal(t, createdAt, n.CreatedAt)
	assert.Equal(t, "renamed", n.Title)
}

func TestUpdateNote_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`UPDATE notes`).
		WithArgs(int64(404), "t", pgtype.Text{}).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateNote(context.Background(), 404, "t", nil)
	require.ErrorIs(t, err, entity.ErrNoteNotFound)
}

func TestUpdateNote_TitleTaken(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`UPDATE notes`).
		WithArgs(int64(10), "dup", pgtype.Text{}).
		WillReturnError(pgErr(pgerrcode.UniqueViolation, notesTitleKey))

	_, err := repo.UpdateNote(context.Background(), 10, "dup", nil)
	require.ErrorIs(t, err, entity.ErrNoteTitleTaken)
}

func TestDeleteNote_ReturnsIDEvenWhenAbsent(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM notes\s+WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM notes`).
		WithArgs(int64(10)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	for range 2 {
		id, err := repo.DeleteNote(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), id)
	}
}

func TestDeleteNote_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM notes`).
		WithArgs(int64(10)).
		WillReturnError(errors.New("conn reset"))

	_, err := repo.DeleteNote(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete note")
}
