package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtimeline/internal/models"
)

var columns = []string{
	"job_name",
	"run_date_formatted",
	"run_time_formatted",
	"run_duration_formatted",
	"run_status",
	"next_run_date_formatted",
	"next_run_time_formatted",
}

func setupMock(t *testing.T) (*JobHistory, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	h := NewJobHistory(func(context.Context) (*sqlx.DB, error) {
		return sqlx.NewDb(db, DriverName), nil
	}, 0)
	h.now = func() time.Time {
		return time.Date(2026, 10, 18, 9, 30, 15, 0, time.Local)
	}
	return h, mock
}

func expectRunsQuery(mock sqlmock.Sqlmock, subdayType int) *sqlmock.ExpectedQuery {
	return mock.ExpectQuery(`FROM msdb\.dbo\.sysjobs`).WithArgs(
		sql.Named("subday_type", subdayType),
		sql.Named("since_two_days", "20261016"),
		sql.Named("since_one_day", "20261017"),
		sql.Named("now_time", "093015"),
	)
}

func TestFetchRunsDecodesRows(t *testing.T) {
	h, mock := setupMock(t)
	rows := sqlmock.NewRows(columns).
		AddRow("Job A", "18/10/2026", "09:00:00", "00:05:00", 1, "18/10/2026", "09:45:00").
		AddRow("Job B", "18/10/2026", "09:10:00", "00:00:30", 2, nil, nil).
		AddRow("Job C", "18/10/2026", "09:20:00", "00:10:00", 99, nil, nil)
	expectRunsQuery(mock, 8).WillReturnRows(rows)
	mock.ExpectClose()

	records, err := h.FetchRuns(context.Background(), models.ViewFor(models.ViewSubdaily))

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, models.JobRunRecord{
		JobName:        "Job A",
		RunDate:        "18/10/2026",
		ScheduledStart: models.ClockTime{Hour: 9},
		Duration:       5 * time.Minute,
		Status:         models.StatusSuccess,
		NextRunDate:    "18/10/2026",
		NextRunTime:    "09:45:00",
	}, records[0])
	assert.Equal(t, models.StatusFailure, records[1].Status)
	assert.Equal(t, 30*time.Second, records[1].Duration)
	assert.Empty(t, records[1].NextRunDate)
	assert.Equal(t, models.StatusUnknown, records[2].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchRunsUsesViewStatusTable(t *testing.T) {
	h, mock := setupMock(t)
	rows := sqlmock.NewRows(columns).
		AddRow("nightly", "17/10/2026", "23:00:00", "01:00:00", 0, nil, nil)
	expectRunsQuery(mock, 1).WillReturnRows(rows)
	mock.ExpectClose()

	records, err := h.FetchRuns(context.Background(), models.ViewFor(models.ViewDaily))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.StatusUnknown, records[0].Status)
	assert.Equal(t, time.Hour, records[0].Duration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchRunsEmpty(t *testing.T) {
	h, mock := setupMock(t)
	expectRunsQuery(mock, 8).WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectClose()

	records, err := h.FetchRuns(context.Background(), models.ViewFor(models.ViewSubdaily))

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchRunsQueryFailureClosesConnection(t *testing.T) {
	h, mock := setupMock(t)
	expectRunsQuery(mock, 8).WillReturnError(errors.New("login failed"))
	mock.ExpectClose()

	_, err := h.FetchRuns(context.Background(), models.ViewFor(models.ViewSubdaily))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataSource))
	assert.Contains(t, err.Error(), "login failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchRunsMalformedRowAbortsFetch(t *testing.T) {
	h, mock := setupMock(t)
	rows := sqlmock.NewRows(columns).
		AddRow("good", "18/10/2026", "09:00:00", "00:05:00", 1, nil, nil).
		AddRow("bad", "18/10/2026", "9-00", "00:05:00", 1, nil, nil)
	expectRunsQuery(mock, 8).WillReturnRows(rows)
	mock.ExpectClose()

	records, err := h.FetchRuns(context.Background(), models.ViewFor(models.ViewSubdaily))

	require.Error(t, err)
	assert.Nil(t, records)
	assert.False(t, errors.Is(err, ErrDataSource))
	assert.Contains(t, err.Error(), `job "bad"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchRunsCloseFailureIsReported(t *testing.T) {
	h, mock := setupMock(t)
	expectRunsQuery(mock, 8).WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectClose().WillReturnError(errors.New("broken pipe"))

	_, err := h.FetchRuns(context.Background(), models.ViewFor(models.ViewSubdaily))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataSource))
}

func TestFetchRunsConnectFailure(t *testing.T) {
	h := NewJobHistory(func(context.Context) (*sqlx.DB, error) {
		return nil, errors.New("connection refused")
	}, time.Second)

	_, err := h.FetchRuns(context.Background(), models.ViewFor(models.ViewSubdaily))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataSource))
	assert.Contains(t, err.Error(), "connect to job history")
}
