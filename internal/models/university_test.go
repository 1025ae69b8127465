package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniversityPeopleByRole(t *testing.T) {
	ids := NewIDAllocator(1)
	u := NewUniversity("KPI")
	s1 := NewStudent(ids, sampleInfo("A", "One"))
	t1 := NewTeacher(ids, sampleInfo("B", "Two"))
	s2 := NewStudent(ids, sampleInfo("C", "Three"))
	u.AddPerson(s1)
	u.AddPerson(t1)
	u.AddPerson(s2)

	assert.Equal(t, []Member{s1, s2}, u.PeopleByRole(RoleStudent))
	assert.Equal(t, []Member{t1}, u.PeopleByRole(RoleTeacher))
	assert.Equal(t, []*Student{s1, s2}, u.Students())
	assert.Equal(t, []*Teacher{t1}, u.Teachers())
	assert.PanicsWithValue(t, "unhandled role: dean", func() {
		u.PeopleByRole(Role("dean"))
	})
}

func TestUniversityFindGroupByCourse(t *testing.T) {
	ids := NewIDAllocator(1)
	u := NewUniversity("KPI")
	teacher := NewTeacher(ids, sampleInfo("T", "T"))
	algebra := NewCourse("Algebra", 4, DisciplineMathematics)
	twin := NewCourse("Algebra", 4, DisciplineMathematics)
	first := NewGroup("A-1", algebra, teacher)
	second := NewGroup("A-2", algebra, teacher)
	u.AddCourse(algebra)
	u.AddGroup(first)
	u.AddGroup(second)

	g, ok := u.FindGroupByCourse(algebra)
	assert.True(t, ok)
	assert.Same(t, first, g)

	g, ok = u.FindGroupByCourse(twin)
	assert.False(t, ok)
	assert.Nil(t, g)
}

func TestUniversityRegistries(t *testing.T) {
	ids := NewIDAllocator(10)
	u := NewUniversity("KPI")
	s := NewStudent(ids, sampleInfo("A", "B"))
	u.AddPerson(s)
	u.AddPerson(s)
	c := NewCourse("Chem", 2, DisciplineChemistry)
	u.AddCourse(c)

	assert.Equal(t, "KPI", u.Name())
	assert.Len(t, u.People(), 2)
	assert.Equal(t, []*Course{c}, u.Courses())
	assert.Empty(t, u.Groups())

	found, ok := u.FindPersonByID(10)
	assert.True(t, ok)
	assert.Same(t, s, found)
	_, ok = u.FindPersonByID(11)
	assert.False(t, ok)

	people := u.People()
	people[0] = nil
	assert.NotNil(t, u.People()[0])
}
