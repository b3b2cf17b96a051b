// internals/features/identity/service/resolver.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/sync/semaphore"
	"gorm.io/gorm"

	"currimon_backend/internals/configs"
	"currimon_backend/internals/constants"
	"currimon_backend/internals/features/identity/model"
	helper "currimon_backend/internals/helpers"
)

/* ==========================
   Const & Types
========================== */

var (
	// ErrNotFound: no identity source holds the email.
	ErrNotFound = errors.New("identity not found")
	// ErrInvalidCredential: a source matched but verification failed.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrNoMatch is returned by a single source's lookup when the email is
	// not in that source's table.
	ErrNoMatch = errors.New("no match in source")
)

// Identity is the canonical projection every source resolves to.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// Record is a source row before credential verification.
type Record struct {
	Identity
	CredentialHash string
}

// Source is one tagged variant of the heterogeneous identity tables. Lookup
// projects a row into the uniform Record shape or reports ErrNoMatch.
type Source struct {
	Name   string
	Lookup func(ctx context.Context, email string) (*Record, error)
}

/* ==========================
   Resolver
========================== */

// Resolver probes an ordered list of identity sources. The first source whose
// email matches wins; there is no fallthrough to later sources even when the
// matched source's verification then fails. Emails are therefore required to
// be unique across the union of all source tables.
type Resolver struct {
	sources          []Source
	sem              *semaphore.Weighted
	allowAdminBypass bool
}

func NewResolver(db *gorm.DB, cfg *configs.Config) *Resolver {
	return &Resolver{
		sources:          []Source{StaffSource(db), SchoolSource(db), TeacherSource(db)},
		sem:              semaphore.NewWeighted(int64(cfg.VerifyWorkers)),
		allowAdminBypass: cfg.AllowAdminBypass,
	}
}

// NewResolverWithSources keeps the probe order explicit and testable.
func NewResolverWithSources(sources []Source, workers int, allowAdminBypass bool) *Resolver {
	if workers <= 0 {
		workers = 1
	}
	return &Resolver{
		sources:          sources,
		sem:              semaphore.NewWeighted(int64(workers)),
		allowAdminBypass: allowAdminBypass,
	}
}

// Resolve verifies (email, plaintext) against the ordered sources and returns
// the canonical identity.
func (r *Resolver) Resolve(ctx context.Context, email, plain string) (*Identity, error) {
	email = strings.TrimSpace(email)

	for _, src := range r.sources {
		rec, err := src.Lookup(ctx, email)
		if errors.Is(err, ErrNoMatch) {
			continue
		}
		if err != nil {
			return nil, err
		}

		// Legacy policy: Administrator staff skip verification entirely.
		// Off by default; see configs.AllowAdminBypass.
		if r.allowAdminBypass && rec.Role == constants.RoleAdministrator {
			log.Printf("[WARN] credential verification bypassed for administrator %s (source=%s)", rec.Email, src.Name)
			id := rec.Identity
			return &id, nil
		}

		if err := r.verify(ctx, rec.CredentialHash, plain); err != nil {
			if errors.Is(err, helper.ErrHashMismatch) {
				return nil, ErrInvalidCredential
			}
			return nil, err
		}
		id := rec.Identity
		return &id, nil
	}
	return nil, ErrNotFound
}

// verify runs the memory-hard hash under a bounded pool so concurrent logins
// do not serialize the request path.
func (r *Resolver) verify(ctx context.Context, hash, plain string) error {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer r.sem.Release(1)
	return helper.CheckPasswordHash(hash, plain)
}

/* ==========================
   Source projections
========================== */

func StaffSource(db *gorm.DB) Source {
	return Source{
		Name: "staff",
		Lookup: func(ctx context.Context, email string) (*Record, error) {
			var row model.StaffModel
			err := db.WithContext(ctx).
				Where("email = ?", email).
				Take(&row).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNoMatch
			}
			if err != nil {
				return nil, err
			}
			return &Record{
				Identity: Identity{
					ID:        row.StaffID.String(),
					Email:     row.StaffEmail,
					FirstName: row.StaffFirstName,
					LastName:  row.StaffLastName,
					Role:      row.StaffRole,
				},
				CredentialHash: row.StaffPassword,
			}, nil
		},
	}
}

func SchoolSource(db *gorm.DB) Source {
	return Source{
		Name: "schools",
		Lookup: func(ctx context.Context, email string) (*Record, error) {
			var row struct {
				Code     string `gorm:"column:school_code"`
				Name     string `gorm:"column:school_name"`
				Email    string
				Password string
			}
			err := db.WithContext(ctx).
				Table("schools").
				Select("school_code, school_name, email, password").
				Where("email = ? AND active = TRUE", email).
				Take(&row).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNoMatch
			}
			if err != nil {
				return nil, err
			}
			return &Record{
				Identity: Identity{
					ID:        row.Code,
					Email:     row.Email,
					FirstName: row.Name,
					Role:      constants.RoleSchool,
				},
				CredentialHash: row.Password,
			}, nil
		},
	}
}

func TeacherSource(db *gorm.DB) Source {
	return Source{
		Name: "teachers",
		Lookup: func(ctx context.Context, email string) (*Record, error) {
			var row struct {
				Code      string `gorm:"column:teacher_code"`
				FirstName string `gorm:"column:firstname"`
				LastName  string `gorm:"column:lastname"`
				Email     string
				Password  string
			}
			err := db.WithContext(ctx).
				Table("teachers").
				Select("teacher_code, firstname, lastname, email, password").
				Where("email = ? AND active = TRUE", email).
				Take(&row).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNoMatch
			}
			if err != nil {
				return nil, err
			}
			return &Record{
				Identity: Identity{
					ID:        row.Code,
					Email:     row.Email,
					FirstName: row.FirstName,
					LastName:  row.LastName,
					Role:      constants.RoleTeacher,
				},
				CredentialHash: row.Password,
			}, nil
		},
	}
}
