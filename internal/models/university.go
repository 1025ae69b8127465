package models

import (
	"slices"

	appErrors "github.com/noah-isme/university-records/pkg/errors"
)

// University is the registry of courses, groups and people. It holds shared
// references and performs no deduplication.
type University struct {
	name    string
	courses []*Course
	groups  []*Group
	people  []Member
}

// NewUniversity creates an empty registry.
func NewUniversity(name string) *University {
	return &University{name: name}
}

func (u *University) Name() string { return u.name }

func (u *University) AddCourse(course *Course) { u.courses = append(u.courses, course) }
func (u *University) AddGroup(group *Group)    { u.groups = append(u.groups, group) }
func (u *University) AddPerson(person Member)  { u.people = append(u.people, person) }

// Courses returns the registered courses in registration order.
func (u *University) Courses() []*Course { return slices.Clone(u.courses) }

// Groups returns the registered groups in registration order.
func (u *University) Groups() []*Group { return slices.Clone(u.groups) }

// People returns every registered person in registration order.
func (u *University) People() []Member { return slices.Clone(u.people) }

// FindGroupByCourse returns the first registered group teaching course.
func (u *University) FindGroupByCourse(course *Course) (*Group, bool) {
	for _, g := range u.groups {
		if g.Course() == course {
			return g, true
		}
	}
	return nil, false
}

// FindPersonByID returns the first registered person with the given id.
func (u *University) FindPersonByID(id int) (Member, bool) {
	for _, p := range u.people {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// PeopleByRole returns registered people with the given role in registration
// order. A role outside the closed set is a defect and panics.
func (u *University) PeopleByRole(role Role) []Member {
	switch role {
	case RoleStudent, RoleTeacher:
		var matched []Member
		for _, p := range u.people {
			if p.Role() == role {
				matched = append(matched, p)
			}
		}
		return matched
	default:
		appErrors.Unhandled("role", role)
		return nil
	}
}

// Students returns registered students in registration order.
func (u *University) Students() []*Student {
	var students []*Student
	for _, p := range u.PeopleByRole(RoleStudent) {
		if s, ok := p.(*Student); ok {
			students = append(students, s)
		}
	}
	return students
}

// Teachers returns registered teachers in registration order.
func (u *University) Teachers() []*Teacher {
	var teachers []*Teacher
	for _, p := range u.PeopleByRole(RoleTeacher) {
		if t, ok := p.(*Teacher); ok {
			teachers = append(teachers, t)
		}
	}
	return teachers
}
