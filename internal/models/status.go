package models

// Status is the outcome of a job run.
type Status string

const (
	StatusSuccess  Status = "Success"
	StatusFailure  Status = "Failure"
	StatusRetry    Status = "Retry"
	StatusCanceled Status = "Canceled"
	StatusUnknown  Status = "Unknown"
)

var statusColors = map[Status]string{
	StatusSuccess:  "green",
	StatusFailure:  "red",
	StatusRetry:    "orange",
	StatusCanceled: "grey",
	StatusUnknown:  "white",
}

// Color returns the chart color for the status.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[StatusUnknown]
}

// StatusTable decodes integer run status codes reported by the scheduler.
type StatusTable map[int]Status

// Decode maps code to a Status. Codes missing from the table are Unknown.
func (t StatusTable) Decode(code int) Status {
	if s, ok := t[code]; ok {
		return s
	}
	return StatusUnknown
}

var (
	// SubdailyStatuses treats code 0 as a failure as well.
	SubdailyStatuses = StatusTable{
		0: StatusFailure,
		1: StatusSuccess,
		2: StatusFailure,
		3: StatusRetry,
		4: StatusCanceled,
	}
	DailyStatuses = StatusTable{
		1: StatusSuccess,
		2: StatusFailure,
		3: StatusRetry,
		4: StatusCanceled,
	}
)
