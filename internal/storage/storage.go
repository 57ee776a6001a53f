package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/microsoft/go-mssqldb"

	"jobtimeline/internal/models"
)

// DriverName is the database/sql driver registered by go-mssqldb.
const DriverName = "sqlserver"

// ErrDataSource marks failures to reach or query the job history database.
var ErrDataSource = errors.New("job history data source unavailable")

// Opener acquires a fresh database handle for a single request.
type Opener func(ctx context.Context) (*sqlx.DB, error)

// Connector returns an Opener that dials dsn and verifies the connection.
// The returned handle is restricted to a single connection.
func Connector(dsn string) Opener {
	return func(ctx context.Context) (*sqlx.DB, error) {
		db, err := sqlx.Open(DriverName, dsn)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(0)
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}
}

// JobHistory reads recent job runs from the SQL Server Agent catalog.
type JobHistory struct {
	open    Opener
	timeout time.Duration
	now     func() time.Time
}

// NewJobHistory creates a reader. A zero timeout leaves the request context as is.
func NewJobHistory(open Opener, timeout time.Duration) *JobHistory {
	return &JobHistory{open: open, timeout: timeout, now: time.Now}
}

type runRow struct {
	JobName     string         `db:"job_name"`
	RunDate     string         `db:"run_date_formatted"`
	RunTime     string         `db:"run_time_formatted"`
	RunDuration string         `db:"run_duration_formatted"`
	RunStatus   int            `db:"run_status"`
	NextRunDate sql.NullString `db:"next_run_date_formatted"`
	NextRunTime sql.NullString `db:"next_run_time_formatted"`
}

// FetchRuns returns the runs of the view's schedules in the recent window,
// most recent first within each schedule. The connection is closed before
// returning on every path. Any row that fails to decode aborts the fetch.
func (h *JobHistory) FetchRuns(ctx context.Context, view models.View) (_ []models.JobRunRecord, err error) {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	db, err := h.open(ctx)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "connect to job history"), ErrDataSource)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = errors.Mark(errors.Wrap(cerr, "close job history connection"), ErrDataSource)
		}
	}()

	now := h.now()
	var rows []runRow
	err = db.SelectContext(ctx, &rows, recentRunsQuery,
		sql.Named("subday_type", view.FreqSubdayType),
		sql.Named("since_two_days", now.AddDate(0, 0, -2).Format("20060102")),
		sql.Named("since_one_day", now.AddDate(0, 0, -1).Format("20060102")),
		sql.Named("now_time", now.Format("150405")),
	)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "query job history"), ErrDataSource)
	}

	records := make([]models.JobRunRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := decodeRow(row, view.Statuses)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d (job %q)", i+1, row.JobName)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeRow(row runRow, statuses models.StatusTable) (models.JobRunRecord, error) {
	start, err := models.ParseClock(row.RunTime)
	if err != nil {
		return models.JobRunRecord{}, err
	}
	duration, err := models.ParseDuration(row.RunDuration)
	if err != nil {
		return models.JobRunRecord{}, err
	}
	return models.JobRunRecord{
		JobName:        row.JobName,
		RunDate:        row.RunDate,
		ScheduledStart: start,
		Duration:       duration,
		Status:         statuses.Decode(row.RunStatus),
		NextRunDate:    row.NextRunDate.String,
		NextRunTime:    row.NextRunTime.String,
	}, nil
}
