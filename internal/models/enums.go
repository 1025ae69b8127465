package models

// Role distinguishes the kinds of people tracked by the university.
type Role string

// Supported roles.
const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher:
		return true
	}
	return false
}

// Gender captures a person's gender.
type Gender string

// Supported genders.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether the gender belongs to the closed set.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Discipline categorises the subject area of a course.
type Discipline string

// Supported disciplines.
const (
	DisciplineComputerScience Discipline = "computer_science"
	DisciplineMathematics     Discipline = "mathematics"
	DisciplinePhysics         Discipline = "physics"
	DisciplineBiology         Discipline = "biology"
	DisciplineChemistry       Discipline = "chemistry"
)

var disciplineLabels = map[Discipline]string{
	DisciplineComputerScience: "Computer Science",
	DisciplineMathematics:     "Mathematics",
	DisciplinePhysics:         "Physics",
	DisciplineBiology:         "Biology",
	DisciplineChemistry:       "Chemistry",
}

// Valid reports whether the discipline belongs to the closed set.
func (d Discipline) Valid() bool {
	_, ok := disciplineLabels[d]
	return ok
}

// Label returns the human readable discipline name.
func (d Discipline) Label() string {
	if label, ok := disciplineLabels[d]; ok {
		return label
	}
	return string(d)
}

// AcademicStatus is a student's enrollment standing.
type AcademicStatus string

// Possible academic statuses.
const (
	AcademicStatusActive        AcademicStatus = "active"
	AcademicStatusAcademicLeave AcademicStatus = "academic_leave"
	AcademicStatusGraduated     AcademicStatus = "graduated"
	AcademicStatusExpelled      AcademicStatus = "expelled"
)

// Valid reports whether the status belongs to the closed set.
func (s AcademicStatus) Valid() bool {
	switch s {
	case AcademicStatusActive, AcademicStatusAcademicLeave, AcademicStatusGraduated, AcademicStatusExpelled:
		return true
	}
	return false
}
