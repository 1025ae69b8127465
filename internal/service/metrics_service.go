package service

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/noah-isme/university-records/internal/models"
)

// MetricsSnapshot is a lightweight summary of registrar activity.
type MetricsSnapshot struct {
	PeopleRegistered  uint64 `json:"people_registered"`
	CourseEnrollments uint64 `json:"course_enrollments"`
	DomainErrors      uint64 `json:"domain_errors"`
}

// MetricsService encapsulates Prometheus instrumentation for registrar
// operations. A nil *MetricsService is valid and records nothing.
type MetricsService struct {
	registry         *prometheus.Registry
	peopleRegistered *prometheus.CounterVec
	enrollments      prometheus.Counter
	domainErrors     *prometheus.CounterVec
	rosterSize       *prometheus.GaugeVec

	peopleCount     uint64
	enrollmentCount uint64
	errorCount      uint64
}

// NewMetricsService registers registrar collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	peopleRegistered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "registrar_people_registered_total",
		Help: "Total number of people registered by role",
	}, []string{"role"})

	enrollments := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "registrar_course_enrollments_total",
		Help: "Total number of successful course enrollments",
	})

	domainErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "registrar_domain_errors_total",
		Help: "Total number of rejected operations by error code",
	}, []string{"code"})

	rosterSize := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "registrar_group_roster_size",
		Help: "Current number of students in each group",
	}, []string{"group"})

	registry.MustRegister(peopleRegistered, enrollments, domainErrors, rosterSize)

	return &MetricsService{
		registry:         registry,
		peopleRegistered: peopleRegistered,
		enrollments:      enrollments,
		domainErrors:     domainErrors,
		rosterSize:       rosterSize,
	}
}

// Registry exposes the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Gather collects the current metric families.
func (m *MetricsService) Gather() ([]*dto.MetricFamily, error) {
	if m == nil {
		return nil, nil
	}
	return m.registry.Gather()
}

// RecordRegistration counts a newly registered person.
func (m *MetricsService) RecordRegistration(role models.Role) {
	if m == nil {
		return
	}
	m.peopleRegistered.WithLabelValues(string(role)).Inc()
	atomic.AddUint64(&m.peopleCount, 1)
}

// RecordEnrollment counts a successful course enrollment.
func (m *MetricsService) RecordEnrollment() {
	if m == nil {
		return
	}
	m.enrollments.Inc()
	atomic.AddUint64(&m.enrollmentCount, 1)
}

// RecordDomainError counts a rejected operation.
func (m *MetricsService) RecordDomainError(code string) {
	if m == nil {
		return
	}
	m.domainErrors.WithLabelValues(code).Inc()
	atomic.AddUint64(&m.errorCount, 1)
}

// SetRosterSize publishes a group's current roster size.
func (m *MetricsService) SetRosterSize(group string, size int) {
	if m == nil {
		return
	}
	m.rosterSize.WithLabelValues(group).Set(float64(size))
}

// Snapshot returns aggregated counters.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		PeopleRegistered:  atomic.LoadUint64(&m.peopleCount),
		CourseEnrollments: atomic.LoadUint64(&m.enrollmentCount),
		DomainErrors:      atomic.LoadUint64(&m.errorCount),
	}
}
