package reconciler

import (
	"fmt"
	"strings"

	"github.com/upbvirtual/enroller/pkg/classify"
	"github.com/upbvirtual/enroller/pkg/constants"
	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/normalize"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// StrategyType represents the type of process strategy.
type StrategyType string

// String returns the string representation of a strategy type.
func (s StrategyType) String() string {
	return string(s)
}

// Name returns the display name of the strategy type.
func (s StrategyType) Name() string {
	words := strings.Split(s.String(), "-")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

const (
	// StrategyTypeEnroll provisions and enrolls active records.
	StrategyTypeEnroll StrategyType = "enroll"
	// StrategyTypeUnenroll removes cancelled enrollments.
	StrategyTypeUnenroll StrategyType = "unenroll"
	// StrategyTypeCleanup removes enrollments deleted from the source list.
	StrategyTypeCleanup StrategyType = "list-cleanup"
)

// Env is what a strategy may consult besides the record itself.
type Env struct {
	Course   roster.Course
	Accounts *roster.Accounts
	Variant  roster.Variant
}

// Strategy decides the commands for one record under a process mode.
type Strategy interface {
	// Type returns the strategy type
	Type() StrategyType

	// Mode returns the process mode the strategy implements
	Mode() roster.Mode

	// Description returns a human-readable description
	Description() string

	// Decide returns the commands for rec, or a skip reason
	Decide(rec roster.Record, env Env) Decision
}

// NewStrategy returns the strategy for a process mode.
func NewStrategy(mode roster.Mode) (Strategy, error) {
	switch mode {
	case roster.ModeEnroll, "":
		return NewEnrollStrategy(), nil
	case roster.ModeUnenroll:
		return NewUnenrollStrategy(), nil
	case roster.ModeCleanup:
		return NewCleanupStrategy(), nil
	default:
		return nil, &errors.ValidationError{
			Field:   "mode",
			Value:   mode,
			Message: fmt.Sprintf("unsupported process mode (want one of %v)", roster.Modes),
		}
	}
}

// baseStrategy provides common strategy functionality.
type baseStrategy struct {
	typ         StrategyType
	mode        roster.Mode
	description string
}

// Type returns the strategy type.
func (s *baseStrategy) Type() StrategyType {
	return s.typ
}

// Mode returns the process mode.
func (s *baseStrategy) Mode() roster.Mode {
	return s.mode
}

// Description returns a human-readable description.
func (s *baseStrategy) Description() string {
	return s.description
}

// EnrollStrategy creates or refreshes users and enrolls them.
type EnrollStrategy struct {
	baseStrategy
}

// NewEnrollStrategy creates the Matricular strategy.
func NewEnrollStrategy() Strategy {
	return &EnrollStrategy{
		baseStrategy: baseStrategy{
			typ:         StrategyTypeEnroll,
			mode:        roster.ModeEnroll,
			description: "Creates or updates enrolled users and enrolls them in the course",
		},
	}
}

// Decide implements Strategy.
func (s *EnrollStrategy) Decide(rec roster.Record, env Env) Decision {
	if rec.Status != roster.StatusEnrolled {
		return skip(rec, SkipOutOfScope, "status "+statusText(rec.Status))
	}
	if env.Variant == roster.Moderator {
		return s.moderator(rec, env)
	}
	return s.student(rec, env)
}

func (s *EnrollStrategy) student(rec roster.Record, env Env) Decision {
	switch {
	case rec.Partner == constants.DefaultPartner:
	case rec.Partner == constants.ExternalPartner && rec.PaymentFlag == roster.Paid:
	case rec.Partner == constants.ExternalPartner:
		return skip(rec, SkipPaymentRequired, "partner "+rec.Partner+" without payment")
	default:
		return skip(rec, SkipPartnerNotAllowed, "partner "+rec.Partner)
	}

	programType := classify.ProgramType(env.Course.Period)
	class, ok := classify.Student(programType, rec.Partner)
	if !ok {
		return skip(rec, SkipUnclassifiable, "program type "+programType)
	}

	doc := normalize.FormatDocument(rec.DocumentType, rec.DocumentNumber).Value
	var cmds []roster.Command
	if env.Accounts.Exists(rec.PersonID) {
		cmds = append(cmds,
			updateCommand(rec, doc),
			roster.Command{Kind: roster.Enroll, PersonID: rec.PersonID, Role: class.Role, Target: constants.ArchetypeUnit},
		)
	} else {
		cmds = append(cmds,
			createCommand(rec, doc, class.Role),
			roster.Command{Kind: roster.Enroll, PersonID: rec.PersonID, Role: class.Role, Target: class.OrgUnit},
		)
	}
	cmds = append(cmds, roster.Command{
		Kind: roster.Enroll, PersonID: rec.PersonID, Role: constants.CourseStudentRole, Target: env.Course.Name,
	})
	return Decision{Record: rec, Commands: cmds}
}

func (s *EnrollStrategy) moderator(rec roster.Record, env Env) Decision {
	class := classify.Moderator()
	doc := normalize.FormatDocument(rec.DocumentType, rec.DocumentNumber).Value

	var cmds []roster.Command
	if acc, ok := env.Accounts.Lookup(rec.PersonID); ok {
		cmds = append(cmds, updateCommand(rec, doc))
		if unit, ok := classify.VacateUnit(acc.RoleID); ok {
			cmds = append(cmds, roster.Command{Kind: roster.Unenroll, PersonID: rec.PersonID, Target: unit})
		}
		cmds = append(cmds, roster.Command{Kind: roster.Enroll, PersonID: rec.PersonID, Role: class.Role, Target: class.OrgUnit})
	} else {
		cmds = append(cmds, createCommand(rec, doc, class.Role))
	}
	cmds = append(cmds, roster.Command{
		Kind: roster.Enroll, PersonID: rec.PersonID, Role: class.Role, Target: env.Course.Name,
	})
	return Decision{Record: rec, Commands: cmds}
}

// UnenrollStrategy removes cancelled enrollments from the course.
type UnenrollStrategy struct {
	baseStrategy
	status roster.Status
}

// NewUnenrollStrategy creates the Desmatricular strategy.
func NewUnenrollStrategy() Strategy {
	return &UnenrollStrategy{
		baseStrategy: baseStrategy{
			typ:         StrategyTypeUnenroll,
			mode:        roster.ModeUnenroll,
			description: "Unenrolls records whose enrollment was cancelled",
		},
		status: roster.StatusCancelled,
	}
}

// NewCleanupStrategy creates the Limpieza strategy. It behaves like the
// unenroll strategy but acts on records removed from the list.
func NewCleanupStrategy() Strategy {
	return &UnenrollStrategy{
		baseStrategy: baseStrategy{
			typ:         StrategyTypeCleanup,
			mode:        roster.ModeCleanup,
			description: "Unenrolls records removed from the enrollment list",
		},
		status: roster.StatusRemoved,
	}
}

// Decide implements Strategy.
func (s *UnenrollStrategy) Decide(rec roster.Record, env Env) Decision {
	if rec.Status != s.status {
		return skip(rec, SkipOutOfScope, "status "+statusText(rec.Status))
	}
	return Decision{
		Record:   rec,
		Commands: []roster.Command{{Kind: roster.Unenroll, PersonID: rec.PersonID, Target: env.Course.Name}},
	}
}

func createCommand(rec roster.Record, doc, role string) roster.Command {
	return roster.Command{
		Kind:      roster.Create,
		PersonID:  rec.PersonID,
		Document:  doc,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Role:      role,
		Email:     rec.Email,
	}
}

func updateCommand(rec roster.Record, doc string) roster.Command {
	return roster.Command{
		Kind:      roster.Update,
		PersonID:  rec.PersonID,
		Document:  doc,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
	}
}

func statusText(s roster.Status) string {
	if s == roster.StatusUnspecified {
		return "unspecified"
	}
	return string(s)
}
