package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestGetOrCreateInsertsWhenMissing(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewChallengeRepository(db)
	day := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `daily_challenges`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `daily_challenges`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	ch, err := repo.GetOrCreate(7, day)
	require.NoError(t, err)
	assert.Equal(t, uint(5), ch.ID)
	assert.Equal(t, uint(7), ch.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 并发首读同一天时插入会撞 (user_id, day) 唯一索引，
// 撞上后按已存在处理回读对手插入的那条，不产生重复行。
func TestGetOrCreateRefetchesOnDuplicateEntry(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewChallengeRepository(db)
	day := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `daily_challenges`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `daily_challenges`").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '7-2026-01-07' for key 'idx_challenge_user_day'"))
	mock.ExpectRollback()
	mock.ExpectQuery("SELECT \\* FROM `daily_challenges`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "day", "lessons_completed"}).
			AddRow(3, 7, day, 2))

	ch, err := repo.GetOrCreate(7, day)
	require.NoError(t, err)
	assert.Equal(t, uint(3), ch.ID)
	assert.Equal(t, 2, ch.LessonsCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 非重复键的插入失败原样上抛
func TestGetOrCreatePropagatesOtherErrors(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewChallengeRepository(db)
	day := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `daily_challenges`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `daily_challenges`").
		WillReturnError(errors.New("Error 1205 (HY000): Lock wait timeout exceeded"))
	mock.ExpectRollback()

	_, err := repo.GetOrCreate(7, day)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
