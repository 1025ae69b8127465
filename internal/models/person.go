package models

import (
	"fmt"
	"sync/atomic"
	"time"
)

// ContactInfo holds the ways a person can be reached.
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// DefaultContact is substituted for any contact field left empty.
var DefaultContact = ContactInfo{
	Email: "info@university.com",
	Phone: "+380955555555",
}

// WithDefaults fills empty fields from fallback.
func (c ContactInfo) WithDefaults(fallback ContactInfo) ContactInfo {
	if c.Email == "" {
		c.Email = fallback.Email
	}
	if c.Phone == "" {
		c.Phone = fallback.Phone
	}
	return c
}

// PersonInfo bundles the personal data needed to construct any person.
// Field validation is the caller's responsibility.
type PersonInfo struct {
	FirstName string
	LastName  string
	BirthDay  time.Time
	Gender    Gender
	Email     string
	Phone     string
}

// IDAllocator hands out person identifiers. Identifiers increase
// monotonically from the seed and are never reused.
type IDAllocator struct {
	last atomic.Int64
}

// NewIDAllocator returns an allocator whose first identifier is seed.
// Seeds below 1 start at 1.
func NewIDAllocator(seed int) *IDAllocator {
	if seed < 1 {
		seed = 1
	}
	a := &IDAllocator{}
	a.last.Store(int64(seed - 1))
	return a
}

// Next returns the next identifier.
func (a *IDAllocator) Next() int {
	return int(a.last.Add(1))
}

// Person carries the attributes shared by every role. It is never used on its
// own; Teacher and Student embed it.
type Person struct {
	id        int
	role      Role
	firstName string
	lastName  string
	birthDay  time.Time
	gender    Gender
	contact   ContactInfo
}

func newPerson(ids *IDAllocator, info PersonInfo, role Role) Person {
	return Person{
		id:        ids.Next(),
		role:      role,
		firstName: info.FirstName,
		lastName:  info.LastName,
		birthDay:  info.BirthDay,
		gender:    info.Gender,
		contact:   ContactInfo{Email: info.Email, Phone: info.Phone}.WithDefaults(DefaultContact),
	}
}

func (p *Person) ID() int                  { return p.id }
func (p *Person) Role() Role               { return p.role }
func (p *Person) FirstName() string        { return p.firstName }
func (p *Person) LastName() string         { return p.lastName }
func (p *Person) BirthDay() time.Time      { return p.birthDay }
func (p *Person) Gender() Gender           { return p.gender }
func (p *Person) ContactInfo() ContactInfo { return p.contact }

// Profile exposes the shared attributes of a member.
func (p *Person) Profile() *Person { return p }

// FullName is "{lastName} {firstName}".
func (p *Person) FullName() string {
	return fmt.Sprintf("%s %s", p.lastName, p.firstName)
}

// Age is the number of whole years since the birth day as of today. It is
// computed on every call.
func (p *Person) Age() int {
	return p.AgeAt(time.Now())
}

// AgeAt returns the age in whole years on the given date.
func (p *Person) AgeAt(now time.Time) int {
	now = now.In(p.birthDay.Location())
	age := now.Year() - p.birthDay.Year()
	monthDiff := int(now.Month()) - int(p.birthDay.Month())
	if monthDiff < 0 || (monthDiff == 0 && now.Day() < p.birthDay.Day()) {
		age--
	}
	return age
}

// Member is a registered person of any role. The set of implementations is
// closed to *Teacher and *Student; use a type switch on the concrete type or
// a switch on Role to dispatch.
type Member interface {
	ID() int
	Role() Role
	FullName() string
	Age() int
	Profile() *Person
	member()
}
