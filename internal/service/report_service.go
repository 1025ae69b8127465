package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/university-records/internal/models"
	appErrors "github.com/noah-isme/university-records/pkg/errors"
	"github.com/noah-isme/university-records/pkg/export"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ReportService builds tabular views of the registry and renders them.
type ReportService struct {
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService constructs a ReportService.
func NewReportService(logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ReportService{csv: csv, pdf: pdf, logger: logger, now: time.Now}
}

// GroupRoster lists the group's students with their standing.
func (s *ReportService) GroupRoster(group *models.Group, title string) export.Dataset {
	if title == "" {
		title = group.Name()
	}
	data := export.Dataset{
		Title:   fmt.Sprintf("%s (%s, %s)", title, group.Course().Name(), group.Teacher().FullName()),
		Headers: []string{"id", "full_name", "age", "status", "gpa", "total_credits"},
	}
	now := s.now()
	for _, student := range group.Students() {
		perf := student.AcademicPerformance()
		data.AddRow(
			strconv.Itoa(student.ID()),
			student.FullName(),
			strconv.Itoa(student.AgeAt(now)),
			string(student.Status()),
			strconv.FormatFloat(perf.GPA, 'f', 2, 64),
			strconv.Itoa(perf.TotalCredits),
		)
	}
	data.AddRow("", "average", "", "", strconv.FormatFloat(group.AverageGroupScore(), 'f', 2, 64), "")
	return data
}

// PeopleByRole lists registered people of one role with contact details.
func (s *ReportService) PeopleByRole(university *models.University, role models.Role) export.Dataset {
	data := export.Dataset{
		Title:   fmt.Sprintf("%s: %ss", university.Name(), role),
		Headers: []string{"id", "full_name", "role", "email", "phone", "age"},
	}
	now := s.now()
	for _, member := range university.PeopleByRole(role) {
		person := member.Profile()
		contact := person.ContactInfo()
		data.AddRow(
			strconv.Itoa(person.ID()),
			person.FullName(),
			string(person.Role()),
			contact.Email,
			contact.Phone,
			strconv.Itoa(person.AgeAt(now)),
		)
	}
	return data
}

// Transcript lists the student's enrolled courses.
func (s *ReportService) Transcript(student *models.Student) export.Dataset {
	data := export.Dataset{
		Title:   fmt.Sprintf("Transcript: %s", student.FullName()),
		Headers: []string{"course", "discipline", "credits"},
	}
	for _, course := range student.EnrolledCourses() {
		data.AddRow(course.Name(), course.Discipline().Label(), strconv.Itoa(course.Credits()))
	}
	data.AddRow("total", "", strconv.Itoa(student.AcademicPerformance().TotalCredits))
	return data
}

// Render encodes the dataset in the requested format.
func (s *ReportService) Render(reportType models.ReportType, data export.Dataset, format models.ReportFormat) (*models.Report, error) {
	var (
		content []byte
		err     error
	)
	switch format {
	case models.ReportFormatCSV:
		content, err = s.csv.Render(data)
	case models.ReportFormatPDF:
		content, err = s.pdf.Render(data)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported report format "+string(format))
	}
	if err != nil {
		s.logger.Error("report rendering failed", zap.String("type", string(reportType)), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render report")
	}
	report := &models.Report{
		ID:          uuid.NewString(),
		Type:        reportType,
		Format:      format,
		Content:     content,
		GeneratedAt: s.now().UTC(),
	}
	s.logger.Info("report rendered", zap.String("report_id", report.ID), zap.String("type", string(reportType)), zap.Int("bytes", len(content)))
	return report, nil
}
