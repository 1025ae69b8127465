package models

// Course is a static description of a taught subject. Courses are shared by
// reference between groups, teachers and students; two courses with the same
// fields are still different courses.
type Course struct {
	name       string
	credits    int
	discipline Discipline
}

// NewCourse builds an immutable course.
func NewCourse(name string, credits int, discipline Discipline) *Course {
	return &Course{name: name, credits: credits, discipline: discipline}
}

func (c *Course) Name() string           { return c.name }
func (c *Course) Credits() int           { return c.credits }
func (c *Course) Discipline() Discipline { return c.discipline }
