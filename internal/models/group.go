package models

import (
	"fmt"
	"slices"

	appErrors "github.com/noah-isme/university-records/pkg/errors"
)

// Group ties a course and its teacher to a roster of students. A student
// appears in the roster at most once.
type Group struct {
	name     string
	course   *Course
	teacher  *Teacher
	students []*Student
}

// NewGroup creates a group with an empty roster.
func NewGroup(name string, course *Course, teacher *Teacher) *Group {
	return &Group{name: name, course: course, teacher: teacher}
}

func (g *Group) Name() string      { return g.name }
func (g *Group) Course() *Course   { return g.course }
func (g *Group) Teacher() *Teacher { return g.teacher }
func (g *Group) Size() int         { return len(g.students) }

// HasStudent reports whether this exact student is on the roster.
func (g *Group) HasStudent(student *Student) bool {
	return slices.Contains(g.students, student)
}

// AddStudent appends the student to the roster.
func (g *Group) AddStudent(student *Student) error {
	if g.HasStudent(student) {
		return appErrors.Clone(appErrors.ErrAlreadyInGroup, "")
	}
	g.students = append(g.students, student)
	return nil
}

// RemoveStudentByID removes the first roster entry with the given id.
func (g *Group) RemoveStudentByID(id int) error {
	idx := slices.IndexFunc(g.students, func(s *Student) bool { return s.ID() == id })
	if idx < 0 {
		return appErrors.Clone(appErrors.ErrStudentNotInGroup, fmt.Sprintf("Student %d not found in group", id))
	}
	g.students = slices.Delete(g.students, idx, idx+1)
	return nil
}

// AverageGroupScore is the mean GPA of the roster, or 0 for an empty roster.
func (g *Group) AverageGroupScore() float64 {
	if len(g.students) == 0 {
		return 0
	}
	var total float64
	for _, s := range g.students {
		total += s.AverageScore()
	}
	return total / float64(len(g.students))
}

// Students returns a copy of the roster.
func (g *Group) Students() []*Student {
	return slices.Clone(g.students)
}

// StudentByID returns the roster member with the given id.
func (g *Group) StudentByID(id int) (*Student, error) {
	for _, s := range g.students {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrStudentNotInGroup, fmt.Sprintf("Student %d not found in group", id))
}

// StudentsByIDs returns the roster members whose id is listed, in roster
// order. Unknown ids are skipped.
func (g *Group) StudentsByIDs(ids ...int) []*Student {
	var found []*Student
	for _, s := range g.students {
		if slices.Contains(ids, s.ID()) {
			found = append(found, s)
		}
	}
	return found
}
