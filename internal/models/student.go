package models

import appErrors "github.com/noah-isme/university-records/pkg/errors"

// AcademicPerformance summarises a student's record. GPA is assigned
// externally and never derived from enrolled courses.
type AcademicPerformance struct {
	TotalCredits int     `json:"total_credits"`
	GPA          float64 `json:"gpa"`
}

// Student is a person enrolled at the university.
type Student struct {
	Person
	performance AcademicPerformance
	enrolled    []*Course
	status      AcademicStatus
}

// NewStudent constructs an active student with a freshly allocated identifier.
func NewStudent(ids *IDAllocator, info PersonInfo) *Student {
	return &Student{
		Person: newPerson(ids, info, RoleStudent),
		status: AcademicStatusActive,
	}
}

func (s *Student) member() {}

// Status returns the current academic status.
func (s *Student) Status() AcademicStatus { return s.status }

// AcademicPerformance returns a copy of the student's performance record.
func (s *Student) AcademicPerformance() AcademicPerformance { return s.performance }

// EnrollCourse adds the course and its credits. Only active students may
// enroll. Enrolling in the same course twice is allowed.
func (s *Student) EnrollCourse(course *Course) error {
	if course == nil {
		return appErrors.Clone(appErrors.ErrValidation, "course is required")
	}
	if s.status != AcademicStatusActive {
		return appErrors.Clone(appErrors.ErrNotActive, "")
	}
	credits := course.Credits()
	s.enrolled = append(s.enrolled, course)
	s.performance.TotalCredits += credits
	return nil
}

// AverageScore returns the student's GPA.
func (s *Student) AverageScore() float64 {
	return s.performance.GPA
}

// SetGPA records the externally computed grade-point average.
func (s *Student) SetGPA(gpa float64) {
	s.performance.GPA = gpa
}

// UpdateAcademicStatus overwrites the status. Any transition is accepted.
func (s *Student) UpdateAcademicStatus(status AcademicStatus) {
	s.status = status
}

// EnrolledCourses returns a copy of the enrolled courses.
func (s *Student) EnrolledCourses() []*Course {
	return append([]*Course(nil), s.enrolled...)
}
