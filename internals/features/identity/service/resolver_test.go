package service

import (
	"context"
	"errors"
	"testing"

	"currimon_backend/internals/constants"
	helper "currimon_backend/internals/helpers"
)

func fakeSource(name string, records map[string]*Record) Source {
	return Source{
		Name: name,
		Lookup: func(ctx context.Context, email string) (*Record, error) {
			if rec, ok := records[email]; ok {
				return rec, nil
			}
			return nil, ErrNoMatch
		},
	}
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := helper.HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return h
}

func TestResolveProbeOrderFirstMatchWins(t *testing.T) {
	hash := mustHash(t, "pw")
	school := fakeSource("schools", map[string]*Record{
		"dup@example.com": {
			Identity:       Identity{ID: "1-SCH", Email: "dup@example.com", Role: constants.RoleSchool},
			CredentialHash: hash,
		},
	})
	teacher := fakeSource("teachers", map[string]*Record{
		"dup@example.com": {
			Identity:       Identity{ID: "1-TCH", Email: "dup@example.com", Role: constants.RoleTeacher},
			CredentialHash: hash,
		},
	})

	r := NewResolverWithSources([]Source{school, teacher}, 2, false)
	id, err := r.Resolve(context.Background(), "dup@example.com", "pw")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id.Role != constants.RoleSchool || id.ID != "1-SCH" {
		t.Fatalf("expected the earlier source to win, got role=%s id=%s", id.Role, id.ID)
	}
}

func TestResolveNoFallthroughOnBadCredential(t *testing.T) {
	staff := fakeSource("staff", map[string]*Record{
		"a@example.com": {
			Identity:       Identity{ID: "u1", Email: "a@example.com", Role: constants.RoleStaff},
			CredentialHash: mustHash(t, "right"),
		},
	})
	teacher := fakeSource("teachers", map[string]*Record{
		"a@example.com": {
			Identity:       Identity{ID: "9-TCH", Email: "a@example.com", Role: constants.RoleTeacher},
			CredentialHash: mustHash(t, "wrong"),
		},
	})

	r := NewResolverWithSources([]Source{staff, teacher}, 2, false)
	_, err := r.Resolve(context.Background(), "a@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential without fallthrough, got %v", err)
	}
}

func TestResolveUnknownEmail(t *testing.T) {
	r := NewResolverWithSources([]Source{fakeSource("staff", nil)}, 1, false)
	_, err := r.Resolve(context.Background(), "nobody@example.com", "pw")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveAdminBypassPolicy(t *testing.T) {
	admin := fakeSource("staff", map[string]*Record{
		"root@example.com": {
			Identity:       Identity{ID: "u0", Email: "root@example.com", Role: constants.RoleAdministrator},
			CredentialHash: "not-a-real-hash",
		},
	})

	// default policy: the stored hash is checked and fails
	strict := NewResolverWithSources([]Source{admin}, 1, false)
	if _, err := strict.Resolve(context.Background(), "root@example.com", "anything"); err == nil {
		t.Fatal("expected verification failure with bypass disabled")
	}

	// legacy policy: administrators skip verification
	legacy := NewResolverWithSources([]Source{admin}, 1, true)
	id, err := legacy.Resolve(context.Background(), "root@example.com", "anything")
	if err != nil {
		t.Fatalf("expected bypass to succeed, got %v", err)
	}
	if id.Role != constants.RoleAdministrator {
		t.Fatalf("unexpected role %s", id.Role)
	}
}

func TestResolveVerifiesMatchedSource(t *testing.T) {
	teacher := fakeSource("teachers", map[string]*Record{
		"t@example.com": {
			Identity:       Identity{ID: "3-TCH", Email: "t@example.com", FirstName: "Ada", LastName: "L", Role: constants.RoleTeacher},
			CredentialHash: mustHash(t, "pw"),
		},
	})
	r := NewResolverWithSources([]Source{teacher}, 1, false)
	id, err := r.Resolve(context.Background(), "t@example.com", "pw")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id.ID != "3-TCH" || id.FirstName != "Ada" || id.Role != constants.RoleTeacher {
		t.Fatalf("identity projection lost: %+v", id)
	}
}
