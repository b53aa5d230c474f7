package user

import (
	"context"
	"errors"
	"testing"

	"github.com/MikeMC777/caja-pos/internal/apperr"
)

type stubRepo struct {
	byName map[string]*User
}

func newStubRepo() *stubRepo { return &stubRepo{byName: map[string]*User{}} }

func (s *stubRepo) Create(ctx context.Context, u *User) error {
	if _, ok := s.byName[u.Username]; ok {
		return ErrAlreadyExist
	}
	cp := *u
	s.byName[u.Username] = &cp
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*User, error) {
	for _, u := range s.byName {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	u, ok := s.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func TestCreateUser_DefaultsToCashier(t *testing.T) {
	svc := NewService(newStubRepo())

	u, err := svc.CreateUser(context.Background(), CreateUserRequest{Username: " caja1 ", Password: "pw"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Role != RoleCashier || u.Username != "caja1" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash == "pw" || !CheckPassword(u.PasswordHash, "pw") {
		t.Fatalf("password was not hashed correctly")
	}
}

func TestCreateUser_Validation(t *testing.T) {
	svc := NewService(newStubRepo())
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, CreateUserRequest{Username: "x"}); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("missing password: err=%v", err)
	}
	if _, err := svc.CreateUser(ctx, CreateUserRequest{Username: "x", Password: "pw", Role: "chef"}); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("bad role: err=%v", err)
	}
	if _, err := svc.CreateUser(ctx, CreateUserRequest{Username: "x", Password: "pw"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateUser(ctx, CreateUserRequest{Username: "x", Password: "pw"}); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate: err=%v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(newStubRepo())
	ctx := context.Background()
	if _, err := svc.CreateUser(ctx, CreateUserRequest{Username: "cocina", Password: "pw", Role: "kitchen"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	u, ok, err := svc.Authenticate(ctx, "cocina", "pw")
	if err != nil || !ok || u.Role != RoleKitchen {
		t.Fatalf("expected login ok, got ok=%v err=%v", ok, err)
	}
	if _, ok, _ := svc.Authenticate(ctx, "cocina", "nope"); ok {
		t.Fatalf("wrong password accepted")
	}
	if _, ok, _ := svc.Authenticate(ctx, "ghost", "pw"); ok {
		t.Fatalf("unknown user accepted")
	}
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin", "admin123")
	if err != nil || !created {
		t.Fatalf("first call: created=%v err=%v", created, err)
	}
	created, err = svc.EnsureAdmin(ctx, "admin", "admin123")
	if err != nil || created {
		t.Fatalf("second call: created=%v err=%v", created, err)
	}
	if repo.byName["admin"].Role != RoleAdmin {
		t.Fatalf("seed user is not admin")
	}
}
