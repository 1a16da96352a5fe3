package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/emreglvibecoder/darth-vader-api/internal/models"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RepositoryTestSuite runs the repositories against an in-memory SQLite database
type RepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	users UserRepository
	tasks TaskRepository
	ctx   context.Context
}

func (suite *RepositoryTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(suite.db.AutoMigrate(&models.User{}, &models.Task{}))

	suite.users = NewUserRepository(suite.db)
	suite.tasks = NewTaskRepository(suite.db)
	suite.ctx = context.Background()
}

func (suite *RepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *RepositoryTestSuite) createUser(username string) *models.User {
	user := &models.User{Username: username, PasswordHash: "hash"}
	suite.Require().NoError(suite.users.Create(suite.ctx, user))
	return user
}

func (suite *RepositoryTestSuite) TestUserCreate_AssignsID() {
	user := suite.createUser("luke")
	suite.NotZero(user.ID)

	found, err := suite.users.FindByUsername(suite.ctx, "luke")
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)
}

func (suite *RepositoryTestSuite) TestUserCreate_DuplicateUsername() {
	suite.createUser("luke")

	err := suite.users.Create(suite.ctx, &models.User{Username: "luke", PasswordHash: "other"})
	suite.ErrorIs(err, ErrDuplicateUsername)
}

func (suite *RepositoryTestSuite) TestFindByUsername_NotFound() {
	_, err := suite.users.FindByUsername(suite.ctx, "vader")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *RepositoryTestSuite) TestListByOwner_ScopedAndOrdered() {
	luke := suite.createUser("luke")
	leia := suite.createUser("leia")

	for _, title := range []string{"Destroy Death Star", "Find Yoda"} {
		suite.Require().NoError(suite.tasks.Create(suite.ctx, &models.Task{Title: title, OwnerID: luke.ID}))
	}
	suite.Require().NoError(suite.tasks.Create(suite.ctx, &models.Task{Title: "Rescue Han", OwnerID: leia.ID, Completed: true}))

	lukeTasks, err := suite.tasks.ListByOwner(suite.ctx, luke.ID)
	suite.Require().NoError(err)
	suite.Require().Len(lukeTasks, 2)
	suite.Equal("Destroy Death Star", lukeTasks[0].Title)
	suite.Equal("Find Yoda", lukeTasks[1].Title)
	suite.False(lukeTasks[0].Completed)

	leiaTasks, err := suite.tasks.ListByOwner(suite.ctx, leia.ID)
	suite.Require().NoError(err)
	suite.Require().Len(leiaTasks, 1)
	suite.True(leiaTasks[0].Completed)
}

func (suite *RepositoryTestSuite) TestListByOwner_EmptyIsNotNil() {
	user := suite.createUser("luke")

	tasks, err := suite.tasks.ListByOwner(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.NotNil(tasks)
	suite.Empty(tasks)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return db, mock
}

func TestUserCreate_MySQLDuplicateEntry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'luke' for key 'idx_users_username'"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{Username: "luke", PasswordHash: "hash"})

	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreate_WrapsDriverFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{Username: "luke", PasswordHash: "hash"})

	assert.ErrorIs(t, err, ErrCreateUser)
	assert.NotErrorIs(t, err, ErrDuplicateUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner_QueryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `todos` WHERE owner_id = ?")).
		WithArgs(uint64(7)).
		WillReturnError(errors.New("db down"))

	tasks, err := repo.ListByOwner(context.Background(), 7)

	assert.Error(t, err)
	assert.Nil(t, tasks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner_MapsColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	rows := sqlmock.NewRows([]string{"id", "baslik", "tamamlandi", "owner_id"}).
		AddRow(3, "Destroy Death Star", false, 7).
		AddRow(5, "Find Yoda", true, 7)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `todos` WHERE owner_id = ? ORDER BY id ASC")).
		WithArgs(uint64(7)).
		WillReturnRows(rows)

	tasks, err := repo.ListByOwner(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Find Yoda", tasks[1].Title)
	assert.True(t, tasks[1].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
