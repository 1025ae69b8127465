package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/university-records/internal/models"
)

func TestMetricsServiceSnapshot(t *testing.T) {
	m := NewMetricsService()
	m.RecordRegistration(models.RoleStudent)
	m.RecordRegistration(models.RoleTeacher)
	m.RecordEnrollment()
	m.RecordDomainError("ALREADY_IN_GROUP")
	m.SetRosterSize("CS-1", 3)

	assert.Equal(t, MetricsSnapshot{PeopleRegistered: 2, CourseEnrollments: 1, DomainErrors: 1}, m.Snapshot())

	families, err := m.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"registrar_people_registered_total",
		"registrar_course_enrollments_total",
		"registrar_domain_errors_total",
		"registrar_group_roster_size",
	}, names)
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.RecordRegistration(models.RoleStudent)
	m.RecordEnrollment()
	m.RecordDomainError("X")
	m.SetRosterSize("g", 1)
	assert.Equal(t, MetricsSnapshot{}, m.Snapshot())
	assert.Nil(t, m.Registry())
	families, err := m.Gather()
	assert.NoError(t, err)
	assert.Nil(t, families)
}
