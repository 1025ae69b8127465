package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeacherCourses(t *testing.T) {
	teacher := NewTeacher(NewIDAllocator(1), sampleInfo("Ivan", "Franko"), "algebra")
	algebra := NewCourse("Algebra", 4, DisciplineMathematics)
	algebraLab := NewCourse("Algebra", 2, DisciplineMathematics)
	optics := NewCourse("Optics", 3, DisciplinePhysics)

	teacher.AssignCourse(algebra)
	teacher.AssignCourse(optics)
	teacher.AssignCourse(algebraLab)
	teacher.AssignCourse(optics)
	assert.Len(t, teacher.Courses(), 4)

	teacher.RemoveCourse("Algebra")
	assert.Equal(t, []*Course{optics, optics}, teacher.Courses())

	teacher.RemoveCourse("Unknown")
	assert.Len(t, teacher.Courses(), 2)
}

func TestTeacherCoursesIsCopy(t *testing.T) {
	teacher := NewTeacher(NewIDAllocator(1), sampleInfo("A", "B"))
	course := NewCourse("Genetics", 3, DisciplineBiology)
	teacher.AssignCourse(course)

	courses := teacher.Courses()
	courses[0] = NewCourse("Replaced", 1, DisciplineBiology)

	again := teacher.Courses()
	require.Len(t, again, 1)
	assert.Same(t, course, again[0])
}

func TestTeacherSpecializations(t *testing.T) {
	specs := []string{"optics", "mechanics"}
	teacher := NewTeacher(NewIDAllocator(1), sampleInfo("A", "B"), specs...)
	specs[0] = "changed"
	assert.Equal(t, []string{"optics", "mechanics"}, teacher.Specializations())

	teacher.AddSpecialization("thermodynamics")
	assert.Equal(t, []string{"optics", "mechanics", "thermodynamics"}, teacher.Specializations())
	assert.Empty(t, NewTeacher(NewIDAllocator(1), sampleInfo("A", "B")).Specializations())
}

func TestTeacherIgnoresNilCourse(t *testing.T) {
	teacher := NewTeacher(NewIDAllocator(1), sampleInfo("A", "B"))
	teacher.AssignCourse(nil)
	assert.Empty(t, teacher.Courses())
	teacher.RemoveCourse("anything")
	assert.Empty(t, teacher.Courses())
}
