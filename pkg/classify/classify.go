// Package classify maps program types and LMS role codes to enrollment
// roles and home organizational units.
package classify

import (
	"strings"

	"github.com/upbvirtual/enroller/pkg/constants"
)

// Classification is the role a user is enrolled with and the org unit that
// owns the role.
type Classification struct {
	Role    string
	OrgUnit string
}

type studentRule struct {
	standard Classification
	partner  *Classification // used when the partner is the external one
}

var studentRules = map[string]studentRule{
	"41": {
		standard: Classification{Role: "Student_fa", OrgUnit: "CVFA"},
		partner:  &Classification{Role: "Student_ap", OrgUnit: "CVLA"},
	},
	"42": {
		standard: Classification{Role: "Student_fa", OrgUnit: "CVFA"},
		partner:  &Classification{Role: "Student_ap", OrgUnit: "CVLA"},
	},
	"10": {standard: Classification{Role: "Student_pr", OrgUnit: "CVPR"}},
	"11": {standard: Classification{Role: "Student_pr", OrgUnit: "CVPR"}},
	"20": {standard: Classification{Role: "Student_pr", OrgUnit: "CVPR"}},
	"21": {standard: Classification{Role: "Student_pr", OrgUnit: "CVPR"}},
	"50": {standard: Classification{Role: "Student_ex", OrgUnit: "CVFC"}},
	"17": {standard: Classification{Role: "Student_te", OrgUnit: "CVTE"}},
	"27": {standard: Classification{Role: "Student_te", OrgUnit: "CVTE"}},
	"37": {standard: Classification{Role: "Student_te", OrgUnit: "CVTE"}},
}

// vacateUnits maps an existing LMS OrgRoleId to the unit a user leaves when
// re-enrolled as moderator.
var vacateUnits = map[string]string{
	"150": "CVTE",
	"143": "CVLA",
	"138": "CVPR",
	"137": "CVFC",
	"136": "CVFA",
	"135": "CVFA",
}

// ProgramType returns the program-type code of an academic period: its last
// two characters.
func ProgramType(period string) string {
	period = strings.TrimSpace(period)
	if len(period) < 2 {
		return period
	}
	return period[len(period)-2:]
}

// Student classifies a student by program type and partner. The second
// return value is false for program types without a mapping; callers must
// skip those records.
func Student(programType, partner string) (Classification, bool) {
	rule, ok := studentRules[strings.TrimSpace(programType)]
	if !ok {
		return Classification{}, false
	}
	if rule.partner != nil && strings.EqualFold(strings.TrimSpace(partner), constants.ExternalPartner) {
		return *rule.partner, true
	}
	return rule.standard, true
}

// Moderator returns the fixed course-staff classification. Moderators are
// re-homed into the archetype unit.
func Moderator() Classification {
	return Classification{Role: constants.ModeratorRole, OrgUnit: constants.ArchetypeUnit}
}

// VacateUnit returns the org unit tied to an existing role code, accepting
// float artifacts such as "136.0".
func VacateUnit(roleID string) (string, bool) {
	roleID = strings.TrimSpace(roleID)
	if i := strings.IndexByte(roleID, '.'); i > 0 && strings.Trim(roleID[i+1:], "0") == "" {
		roleID = roleID[:i]
	}
	unit, ok := vacateUnits[roleID]
	return unit, ok
}
