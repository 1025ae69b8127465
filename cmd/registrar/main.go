package main

import (
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/university-records/internal/models"
	"github.com/noah-isme/university-records/internal/service"
	"github.com/noah-isme/university-records/pkg/config"
	"github.com/noah-isme/university-records/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg, "registrar")
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	metrics := service.NewMetricsService()
	registrar := service.NewRegistrarService(
		models.NewUniversity(cfg.University.Name),
		models.NewIDAllocator(cfg.University.IDSeed),
		service.RegistrarConfig{DefaultContact: models.ContactInfo{Email: cfg.Contact.Email, Phone: cfg.Contact.Phone}},
		validator.New(),
		metrics,
		logr,
	)
	reports := service.NewReportService(logr, nil, nil)

	group, err := seed(registrar)
	if err != nil {
		logr.Sugar().Fatalw("seed failed", "error", err)
	}

	data := reports.GroupRoster(group, cfg.Reports.Title)
	report, err := reports.Render(models.ReportTypeRoster, data, models.ReportFormat(cfg.Reports.Format))
	if err != nil {
		logr.Sugar().Fatalw("report failed", "error", err)
	}
	if _, err := os.Stdout.Write(report.Content); err != nil {
		logr.Sugar().Fatalw("write report", "error", err)
	}

	snapshot := metrics.Snapshot()
	logr.Sugar().Infow("done",
		"report_id", report.ID,
		"people", snapshot.PeopleRegistered,
		"enrollments", snapshot.CourseEnrollments,
		"rejected", snapshot.DomainErrors,
	)
}

func seed(r *service.RegistrarService) (*models.Group, error) {
	course, err := r.CreateCourse(service.CreateCourseRequest{Name: "Data Structures", Credits: 5, Discipline: models.DisciplineComputerScience})
	if err != nil {
		return nil, err
	}
	teacher, err := r.RegisterTeacher(service.RegisterTeacherRequest{
		RegisterPersonRequest: service.RegisterPersonRequest{
			FirstName: "Olena",
			LastName:  "Shevchuk",
			BirthDay:  time.Date(1978, time.October, 4, 0, 0, 0, 0, time.UTC),
			Gender:    models.GenderFemale,
		},
		Specializations: []string{"algorithms", "graph theory"},
	})
	if err != nil {
		return nil, err
	}
	if err := r.AssignCourse(teacher.ID(), course); err != nil {
		return nil, err
	}
	group, err := r.CreateGroup(service.CreateGroupRequest{Name: "CS-21"}, course, teacher)
	if err != nil {
		return nil, err
	}

	students := []service.RegisterPersonRequest{
		{FirstName: "Andrii", LastName: "Melnyk", BirthDay: time.Date(2003, time.January, 17, 0, 0, 0, 0, time.UTC), Gender: models.GenderMale, Email: "melnyk@student.university.com"},
		{FirstName: "Sofiia", LastName: "Kravets", BirthDay: time.Date(2004, time.July, 30, 0, 0, 0, 0, time.UTC), Gender: models.GenderFemale},
		{FirstName: "Taras", LastName: "Hnatiuk", BirthDay: time.Date(2002, time.November, 9, 0, 0, 0, 0, time.UTC), Gender: models.GenderOther, Phone: "+380671112233"},
	}
	gpas := []float64{3.8, 3.4, 2.9}
	for i, req := range students {
		student, err := r.RegisterStudent(req)
		if err != nil {
			return nil, err
		}
		if err := r.RecordGPA(student.ID(), service.RecordGPARequest{GPA: gpas[i]}); err != nil {
			return nil, err
		}
		if err := r.AddToGroup(group, student.ID()); err != nil {
			return nil, err
		}
	}
	return group, nil
}
