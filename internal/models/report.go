package models

import "time"

// ReportType enumerates the reports the registrar can produce.
type ReportType string

const (
	ReportTypeRoster     ReportType = "roster"
	ReportTypePeople     ReportType = "people"
	ReportTypeTranscript ReportType = "transcript"
)

// ReportFormat enumerates supported export formats.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

// Valid reports whether the format is supported.
func (f ReportFormat) Valid() bool {
	return f == ReportFormatCSV || f == ReportFormatPDF
}

// Report is a rendered export.
type Report struct {
	ID          string       `json:"id"`
	Type        ReportType   `json:"type"`
	Format      ReportFormat `json:"format"`
	Content     []byte       `json:"-"`
	GeneratedAt time.Time    `json:"generated_at"`
}
