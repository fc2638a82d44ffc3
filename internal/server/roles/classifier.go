// Package roles infers an account role from the institutional email domain.
package roles

import (
	"strings"

	"github.com/dmitrijs2005/campusgate/internal/common"
	"github.com/dmitrijs2005/campusgate/internal/server/models"
)

// Classifier maps email suffixes to roles. The zero value classifies
// everything as Unknown.
type Classifier struct {
	TeacherSuffix string
	StudentSuffix string
}

// Default classifies @kongu.ac.in as Teacher and @kongu.edu as Student.
var Default = Classifier{
	TeacherSuffix: common.DefaultTeacherDomain,
	StudentSuffix: common.DefaultStudentDomain,
}

// New builds a Classifier from configured domains. A domain given without
// its leading "@" gets one, so "kongu.edu" never matches "x@notkongu.edu".
// Domains are compared case-insensitively.
func New(teacherDomain, studentDomain string) Classifier {
	return Classifier{
		TeacherSuffix: domainSuffix(teacherDomain),
		StudentSuffix: domainSuffix(studentDomain),
	}
}

func domainSuffix(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	if d == "" || strings.HasPrefix(d, "@") {
		return d
	}
	return "@" + d
}

// Classify is pure and total over any string.
func (c Classifier) Classify(email string) models.Role {
	e := strings.ToLower(strings.TrimSpace(email))
	switch {
	case c.TeacherSuffix != "" && strings.HasSuffix(e, c.TeacherSuffix):
		return models.RoleTeacher
	case c.StudentSuffix != "" && strings.HasSuffix(e, c.StudentSuffix):
		return models.RoleStudent
	default:
		return models.RoleUnknown
	}
}

// Classify uses the Default suffixes.
func Classify(email string) models.Role {
	return Default.Classify(email)
}
