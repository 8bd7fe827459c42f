package repo

import (
	"context"
	"errors"
	"testing"

	"moodmate/be/biz/model/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	assert.NoError(t, err)
	return db, mock
}

func TestOwnedStore_PageSQL(t *testing.T) {
	db, mock := setupMockDB(t)
	s := NewOwnedStore[storage.ConversationRecord](db, "public_id")

	mock.ExpectQuery("SELECT \\* FROM `conversations` WHERE user_id = \\? AND `conversations`.`deleted_at` = \\? ORDER BY id LIMIT (5|\\?) OFFSET (10|\\?)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "public_id", "user_id"}).
			AddRow(11, "c-11", 7).
			AddRow(12, "c-12", 7))

	got, err := s.Page(context.Background(), 7, 2)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnedStore_DeleteAllSQL(t *testing.T) {
	t.Run("single statement in one transaction", func(t *testing.T) {
		db, mock := setupMockDB(t)
		s := NewOwnedStore[storage.ConversationRecord](db, "public_id")

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `conversations` SET `deleted_at`=\\? WHERE user_id = \\?").
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectCommit()

		n, err := s.DeleteAllByOwner(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure rolls back and reports nothing deleted", func(t *testing.T) {
		db, mock := setupMockDB(t)
		s := NewOwnedStore[storage.ConversationRecord](db, "public_id")

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `conversations` SET `deleted_at`=\\?").
			WillReturnError(errors.New("lock wait timeout exceeded"))
		mock.ExpectRollback()

		n, err := s.DeleteAllByOwner(context.Background(), 7)
		assert.Error(t, err)
		assert.Equal(t, int64(0), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
