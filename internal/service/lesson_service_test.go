package service

import (
	"errors"
	"testing"

	"lingo_edu_backend/internal/repository"
	"lingo_edu_backend/internal/util"

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

// 答对后课程记录、模块级联与任务入账在同一个事务里提交：
// 任务写入失败时整个事务回滚，不会留下已完成却没入账的课程。
func TestSubmitAnswerRollsBackWhenChallengeWriteFails(t *testing.T) {
	db, mock := newMockGorm(t)

	mock.ExpectQuery("SELECT \\* FROM `lessons`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "module_id", "active"}).AddRow(10, 1, true))
	mock.ExpectQuery("SELECT \\* FROM `videos`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "lesson_id", "title"}).AddRow(100, 10, "A"))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `user_lessons`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectExec("INSERT INTO `user_lessons`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `lessons`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `user_lessons`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `user_modules`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectExec("INSERT INTO `user_modules`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT \\* FROM `daily_challenges`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO `daily_challenges`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("SAVEPOINT").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE `daily_challenges`").
		WillReturnError(errors.New("conexión perdida"))
	mock.ExpectExec("ROLLBACK TO SAVEPOINT").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	missions := NewMissionService(repository.NewChallengeRepository(db))
	missions.Now = fixedClock("2026-01-07")

	svc := NewLessonService(db, repository.NewLessonRepository(db), repository.NewVideoRepository(db),
		repository.NewUserLessonRepository(db), missions)
	svc.Now = missions.Now

	_, err := svc.SubmitAnswer(7, 10, "A", nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitAnswerRejectsOutOfRangeGrade(t *testing.T) {
	db, _ := newMockGorm(t)

	missions := NewMissionService(repository.NewChallengeRepository(db))
	svc := NewLessonService(db, repository.NewLessonRepository(db), repository.NewVideoRepository(db),
		repository.NewUserLessonRepository(db), missions)

	bad := 120.0
	_, err := svc.SubmitAnswer(7, 10, "A", &bad)
	assert.ErrorIs(t, err, util.ErrInvalidGrade)

	neg := -1.0
	_, err = svc.SubmitAnswer(7, 10, "A", &neg)
	assert.ErrorIs(t, err, util.ErrInvalidGrade)
}
