package service

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/university-records/internal/models"
	appErrors "github.com/noah-isme/university-records/pkg/errors"
)

// RegisterPersonRequest holds the personal data for a new student or teacher.
type RegisterPersonRequest struct {
	FirstName string        `json:"first_name" validate:"required"`
	LastName  string        `json:"last_name" validate:"required"`
	BirthDay  time.Time     `json:"birth_day" validate:"required,lte"`
	Gender    models.Gender `json:"gender" validate:"required,gender"`
	Email     string        `json:"email" validate:"omitempty,email"`
	Phone     string        `json:"phone" validate:"omitempty,e164"`
}

// RegisterTeacherRequest extends the personal data with specializations.
type RegisterTeacherRequest struct {
	RegisterPersonRequest
	Specializations []string `json:"specializations" validate:"dive,required"`
}

// CreateCourseRequest describes a course to register.
type CreateCourseRequest struct {
	Name       string            `json:"name" validate:"required"`
	Credits    int               `json:"credits" validate:"gt=0"`
	Discipline models.Discipline `json:"discipline" validate:"required,discipline"`
}

// CreateGroupRequest names a new group.
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required"`
}

// RecordGPARequest carries an externally computed grade-point average.
type RecordGPARequest struct {
	GPA float64 `json:"gpa" validate:"gte=0,lte=4"`
}

// RegistrarConfig tunes registrar behaviour.
type RegistrarConfig struct {
	DefaultContact models.ContactInfo
}

// RegistrarService is the entry point for callers mutating the academic
// registry. It validates input, applies contact defaults, allocates ids and
// reports outcomes through logs and metrics. It is not safe for concurrent
// use.
type RegistrarService struct {
	university *models.University
	ids        *models.IDAllocator
	cfg        RegistrarConfig
	validator  *validator.Validate
	metrics    *MetricsService
	logger     *zap.Logger
}

// NewRegistrarService constructs the registrar.
func NewRegistrarService(university *models.University, ids *models.IDAllocator, cfg RegistrarConfig, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *RegistrarService {
	if ids == nil {
		ids = models.NewIDAllocator(1)
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.DefaultContact = cfg.DefaultContact.WithDefaults(models.DefaultContact)
	svc := &RegistrarService{university: university, ids: ids, cfg: cfg, validator: validate, metrics: metrics, logger: logger}
	svc.validator.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return models.Gender(fl.Field().String()).Valid()
	})
	svc.validator.RegisterValidation("discipline", func(fl validator.FieldLevel) bool {
		return models.Discipline(fl.Field().String()).Valid()
	})
	return svc
}

// University returns the registry managed by the service.
func (s *RegistrarService) University() *models.University {
	return s.university
}

func (s *RegistrarService) personInfo(req RegisterPersonRequest) models.PersonInfo {
	contact := models.ContactInfo{Email: req.Email, Phone: req.Phone}.WithDefaults(s.cfg.DefaultContact)
	return models.PersonInfo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDay:  req.BirthDay,
		Gender:    req.Gender,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

// RegisterStudent creates an active student and adds them to the university.
func (s *RegistrarService) RegisterStudent(req RegisterPersonRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.reject(appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid student payload"))
	}
	student := models.NewStudent(s.ids, s.personInfo(req))
	s.university.AddPerson(student)
	s.metrics.RecordRegistration(models.RoleStudent)
	s.logger.Info("student registered", zap.Int("person_id", student.ID()), zap.String("full_name", student.FullName()))
	return student, nil
}

// RegisterTeacher creates a teacher and adds them to the university.
func (s *RegistrarService) RegisterTeacher(req RegisterTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.reject(appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid teacher payload"))
	}
	teacher := models.NewTeacher(s.ids, s.personInfo(req.RegisterPersonRequest), req.Specializations...)
	s.university.AddPerson(teacher)
	s.metrics.RecordRegistration(models.RoleTeacher)
	s.logger.Info("teacher registered", zap.Int("person_id", teacher.ID()), zap.Strings("specializations", teacher.Specializations()))
	return teacher, nil
}

// CreateCourse registers a new course.
func (s *RegistrarService) CreateCourse(req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.reject(appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid course payload"))
	}
	course := models.NewCourse(req.Name, req.Credits, req.Discipline)
	s.university.AddCourse(course)
	s.logger.Info("course created", zap.String("course", course.Name()), zap.Int("credits", course.Credits()))
	return course, nil
}

// CreateGroup registers a group for course taught by teacher.
func (s *RegistrarService) CreateGroup(req CreateGroupRequest, course *models.Course, teacher *models.Teacher) (*models.Group, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.reject(appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid group payload"))
	}
	if course == nil || teacher == nil {
		return nil, s.reject(appErrors.Clone(appErrors.ErrValidation, "group requires a course and a teacher"))
	}
	group := models.NewGroup(req.Name, course, teacher)
	s.university.AddGroup(group)
	s.metrics.SetRosterSize(group.Name(), 0)
	s.logger.Info("group created", zap.String("group", group.Name()), zap.String("course", course.Name()), zap.Int("teacher_id", teacher.ID()))
	return group, nil
}

// AssignCourse adds course to the teacher identified by teacherID.
func (s *RegistrarService) AssignCourse(teacherID int, course *models.Course) error {
	if course == nil {
		return s.reject(appErrors.Clone(appErrors.ErrValidation, "course is required"), zap.Int("person_id", teacherID))
	}
	teacher, err := s.teacher(teacherID)
	if err != nil {
		return s.reject(err)
	}
	teacher.AssignCourse(course)
	s.logger.Info("course assigned", zap.Int("person_id", teacherID), zap.String("course", course.Name()))
	return nil
}

// UnassignCourse drops every course named courseName from the teacher.
func (s *RegistrarService) UnassignCourse(teacherID int, courseName string) error {
	teacher, err := s.teacher(teacherID)
	if err != nil {
		return s.reject(err)
	}
	teacher.RemoveCourse(courseName)
	s.logger.Info("course unassigned", zap.Int("person_id", teacherID), zap.String("course", courseName))
	return nil
}

// EnrollStudent enrolls the student identified by studentID in course.
func (s *RegistrarService) EnrollStudent(studentID int, course *models.Course) error {
	if course == nil {
		return s.reject(appErrors.Clone(appErrors.ErrValidation, "course is required"), zap.Int("person_id", studentID))
	}
	student, err := s.student(studentID)
	if err != nil {
		return s.reject(err)
	}
	if err := student.EnrollCourse(course); err != nil {
		return s.reject(err, zap.Int("person_id", studentID), zap.String("course", course.Name()))
	}
	s.metrics.RecordEnrollment()
	s.logger.Info("student enrolled", zap.Int("person_id", studentID), zap.String("course", course.Name()))
	return nil
}

// AddToGroup places the student on the group's roster and enrolls them in
// the group's course. Either both happen or neither does.
func (s *RegistrarService) AddToGroup(group *models.Group, studentID int) error {
	if group == nil || group.Course() == nil {
		return s.reject(appErrors.Clone(appErrors.ErrValidation, "group with a course is required"), zap.Int("person_id", studentID))
	}
	student, err := s.student(studentID)
	if err != nil {
		return s.reject(err)
	}
	fields := []zap.Field{zap.Int("person_id", studentID), zap.String("group", group.Name())}
	if group.HasStudent(student) {
		return s.reject(appErrors.Clone(appErrors.ErrAlreadyInGroup, ""), fields...)
	}
	if err := student.EnrollCourse(group.Course()); err != nil {
		return s.reject(err, fields...)
	}
	if err := group.AddStudent(student); err != nil {
		return s.reject(err, fields...)
	}
	s.metrics.RecordEnrollment()
	s.metrics.SetRosterSize(group.Name(), group.Size())
	s.logger.Info("student added to group", fields...)
	return nil
}

// RemoveFromGroup takes the student off the group's roster. Course
// enrollment and credits are kept.
func (s *RegistrarService) RemoveFromGroup(group *models.Group, studentID int) error {
	if group == nil {
		return s.reject(appErrors.Clone(appErrors.ErrValidation, "group is required"), zap.Int("person_id", studentID))
	}
	if err := group.RemoveStudentByID(studentID); err != nil {
		return s.reject(err, zap.Int("person_id", studentID), zap.String("group", group.Name()))
	}
	s.metrics.SetRosterSize(group.Name(), group.Size())
	s.logger.Info("student removed from group", zap.Int("person_id", studentID), zap.String("group", group.Name()))
	return nil
}

// RecordGPA stores the student's grade-point average.
func (s *RegistrarService) RecordGPA(studentID int, req RecordGPARequest) error {
	if err := s.validator.Struct(req); err != nil {
		return s.reject(appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid gpa"))
	}
	student, err := s.student(studentID)
	if err != nil {
		return s.reject(err)
	}
	student.SetGPA(req.GPA)
	s.logger.Info("gpa recorded", zap.Int("person_id", studentID), zap.Float64("gpa", req.GPA))
	return nil
}

// UpdateStatus overwrites the student's academic status.
func (s *RegistrarService) UpdateStatus(studentID int, status models.AcademicStatus) error {
	if !status.Valid() {
		return s.reject(appErrors.Clone(appErrors.ErrValidation, "unknown academic status "+string(status)))
	}
	student, err := s.student(studentID)
	if err != nil {
		return s.reject(err)
	}
	previous := student.Status()
	student.UpdateAcademicStatus(status)
	s.logger.Info("academic status updated", zap.Int("person_id", studentID), zap.String("from", string(previous)), zap.String("to", string(status)))
	return nil
}

func (s *RegistrarService) student(id int) (*models.Student, error) {
	member, ok := s.university.FindPersonByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	student, ok := member.(*models.Student)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return student, nil
}

func (s *RegistrarService) teacher(id int) (*models.Teacher, error) {
	member, ok := s.university.FindPersonByID(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	teacher, ok := member.(*models.Teacher)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return teacher, nil
}

func (s *RegistrarService) reject(err error, fields ...zap.Field) error {
	var appErr *appErrors.Error
	if !errors.As(err, &appErr) {
		appErr = appErrors.FromError(err)
	}
	// never hand out a shared sentinel
	appErr = appErrors.Clone(appErr, "")
	s.metrics.RecordDomainError(appErr.Code)
	s.logger.Warn("operation rejected", append(fields, zap.String("code", appErr.Code), zap.Error(err))...)
	return appErr
}
