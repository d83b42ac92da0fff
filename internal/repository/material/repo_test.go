package material

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/mati-tech/microservices1112/internal/model"
)

var materialColumns = []string{
	"id", "title", "description", "content_url", "file_type", "subject", "grade_level",
	"created_by", "is_active", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func strPtr(s string) *string { return &s }

func TestCreateMaterial(t *testing.T) {
	repo, mock := setupMockDB(t)

	m := model.Material{
		Title:    "Algebra 7",
		FileType: strPtr("pdf"),
		Subject:  strPtr("math"),
		IsActive: true,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO materials")).
		WithArgs("Algebra 7", nil, nil, "pdf", "math", nil, nil, true).
		WillReturnRows(sqlmock.NewRows(materialColumns).
			AddRow(int64(1), "Algebra 7", nil, nil, "pdf", "math", nil, nil, true, time.Now(), nil))

	created, err := repo.CreateMaterial(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "pdf", *created.FileType)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMaterialByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM materials WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(materialColumns))

	_, err := repo.GetMaterialByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrMaterialNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMaterials_AllFilters(t *testing.T) {
	repo, mock := setupMockDB(t)

	active := true
	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE subject = $1 AND grade_level = $2 AND is_active = $3 AND (title ILIKE $4 OR description ILIKE $4) ORDER BY id ASC LIMIT $5 OFFSET $6",
	)).
		WithArgs("math", "Grade 7", true, `%50\%%`, 100, 0).
		WillReturnRows(sqlmock.NewRows(materialColumns).
			AddRow(int64(2), "Algebra 50%", "desc", nil, "pdf", "math", "Grade 7", "instructor", true, time.Now(), nil))

	list, err := repo.ListMaterials(context.Background(), model.MaterialFilter{
		Subject:    "math",
		GradeLevel: "Grade 7",
		IsActive:   &active,
		Search:     "50%",
	}, 0, 100)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "instructor", *list[0].CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMaterials_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM materials ORDER BY id ASC LIMIT $1 OFFSET $2")).
		WithArgs(10, 5).
		WillReturnRows(sqlmock.NewRows(materialColumns))

	list, err := repo.ListMaterials(context.Background(), model.MaterialFilter{}, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMaterial(t *testing.T) {
	repo, mock := setupMockDB(t)

	updatedAt := time.Now()
	m := model.Material{ID: 3, Title: "Geometry 9", IsActive: false}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE materials SET title = $1")).
		WithArgs("Geometry 9", nil, nil, nil, nil, nil, false, int64(3)).
		WillReturnRows(sqlmock.NewRows(materialColumns).
			AddRow(int64(3), "Geometry 9", nil, nil, nil, nil, nil, nil, false, time.Now(), updatedAt))

	updated, err := repo.UpdateMaterial(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, "Geometry 9", updated.Title)
	assert.NotNil(t, updated.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateMaterial(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SET is_active = FALSE")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(materialColumns).
			AddRow(int64(3), "Geometry 9", nil, nil, nil, nil, nil, nil, false, time.Now(), time.Now()))

	m, err := repo.DeactivateMaterial(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, m.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta("SET is_active = FALSE")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(materialColumns))

	_, err = repo.DeactivateMaterial(context.Background(), 4)
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestDeleteMaterial(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM materials WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteMaterial(context.Background(), 3))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM materials WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteMaterial(context.Background(), 3), ErrMaterialNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMaterial_RowsAffectedError(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM materials WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows unavailable")))

	err := repo.DeleteMaterial(context.Background(), 3)
	assert.ErrorContains(t, err, "rows unavailable")
	assert.NotErrorIs(t, err, ErrMaterialNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMaterialByID_ReadsMaster(t *testing.T) {
	master, masterMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = master.Close() })

	slave, slaveMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = slave.Close() })

	repo := NewRepository(&dbpg.DB{Master: master, Slaves: []*sql.DB{slave}})

	masterMock.ExpectQuery(regexp.QuoteMeta("FROM materials WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(materialColumns).
			AddRow(int64(5), "Geometry", nil, nil, nil, nil, nil, nil, true, time.Now(), nil))

	m, err := repo.GetMaterialByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Geometry", m.Title)
	assert.NoError(t, masterMock.ExpectationsWereMet())
	assert.NoError(t, slaveMock.ExpectationsWereMet())
}
