package models

// Teacher is a person who teaches courses.
type Teacher struct {
	Person
	specializations []string
	courses         []*Course
}

// NewTeacher constructs a teacher with a freshly allocated identifier.
func NewTeacher(ids *IDAllocator, info PersonInfo, specializations ...string) *Teacher {
	return &Teacher{
		Person:          newPerson(ids, info, RoleTeacher),
		specializations: append([]string(nil), specializations...),
	}
}

func (t *Teacher) member() {}

// Specializations returns a copy of the teacher's specializations.
func (t *Teacher) Specializations() []string {
	return append([]string(nil), t.specializations...)
}

// AddSpecialization appends a specialization.
func (t *Teacher) AddSpecialization(specialization string) {
	t.specializations = append(t.specializations, specialization)
}

// AssignCourse appends a course. Duplicates are not checked; nil is ignored.
func (t *Teacher) AssignCourse(course *Course) {
	if course == nil {
		return
	}
	t.courses = append(t.courses, course)
}

// RemoveCourse drops every course with the given name.
func (t *Teacher) RemoveCourse(courseName string) {
	kept := t.courses[:0]
	for _, course := range t.courses {
		if course.Name() != courseName {
			kept = append(kept, course)
		}
	}
	for i := len(kept); i < len(t.courses); i++ {
		t.courses[i] = nil
	}
	t.courses = kept
}

// Courses returns a copy of the courses currently taught.
func (t *Teacher) Courses() []*Course {
	return append([]*Course(nil), t.courses...)
}
