package merge

import (
	"github.com/geoirb/go-mailmerge/internal/emailjs"
)

// InspectRequest asks for the placeholder set and column set of an
// uploaded template/dataset pair.
type InspectRequest struct {
	UUID     string
	UserID   int
	Template string
	Dataset  string
}

// InspectResponse ...
type InspectResponse struct {
	UUID         string
	UserID       int
	Placeholders []string
	Columns      []string
	RowCount     int
	Message      string
}

// GenerateRequest runs a download batch over the selected rows.
type GenerateRequest struct {
	UUID     string
	UserID   int
	Template string
	Dataset  string
	Mapping  map[string]string
	Rows     string
}

// GenerateResponse lists the written documents in row order.
type GenerateResponse struct {
	UUID      string
	UserID    int
	Documents []string
}

// EmailRequest runs a delivery batch over the selected rows.
type EmailRequest struct {
	UUID        string
	UserID      int
	Template    string
	Dataset     string
	Mapping     map[string]string
	Rows        string
	EmailColumn string
	Subject     string
	Message     string
	Auth        emailjs.Credentials
}

// EmailResponse carries the per-batch delivery counters.
type EmailResponse struct {
	UUID    string
	UserID  int
	Success int
	Failed  int
	Summary string
}
