package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"medianet/internal/auth"
	"medianet/internal/utils/platformerrors"
)

// mockRepository implements Repository with overridable behavior.
type mockRepository struct {
	CreateFunc          func(ctx context.Context, u *User) error
	FindByEmailFunc     func(ctx context.Context, email string) (*User, error)
	FindByIDFunc        func(ctx context.Context, id uint) (*User, error)
	DeleteFunc          func(ctx context.Context, id uint) error
	ListCredentialsFunc func(ctx context.Context) ([]Credentials, error)

	created []*User
	deleted []uint
}

func (m *mockRepository) Create(ctx context.Context, u *User) error {
	m.created = append(m.created, u)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	u.ID = uint(len(m.created))
	return nil
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRepository) ListCredentials(ctx context.Context) ([]Credentials, error) {
	if m.ListCredentialsFunc != nil {
		return m.ListCredentialsFunc(ctx)
	}
	return nil, nil
}

func newTestService(repo *mockRepository) (*Service, *auth.MemorySessionStore) {
	sessions := auth.NewMemorySessionStore(time.Hour)
	return NewService(repo, sessions, zerolog.Nop()), sessions
}

func TestSignup_HashesPassword(t *testing.T) {
	repo := &mockRepository{}
	svc, _ := newTestService(repo)

	u, err := svc.Signup(context.Background(), "dave", "dave@example.com", "secret")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if u.PasswordHash == "secret" || u.PasswordHash == "" {
		t.Errorf("password stored as %q, want a bcrypt hash", u.PasswordHash)
	}
	if !auth.VerifyPassword(u.PasswordHash, "secret") {
		t.Error("stored hash does not verify against the password")
	}
}

func TestSignup_MissingFields(t *testing.T) {
	repo := &mockRepository{}
	svc, _ := newTestService(repo)

	_, err := svc.Signup(context.Background(), "", "dave@example.com", "secret")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("Signup() error = %v, want VALIDATION", err)
	}
	if len(repo.created) != 0 {
		t.Error("validation failure still reached the repository")
	}
}

func TestSignup_ConflictPassthrough(t *testing.T) {
	repo := &mockRepository{
		CreateFunc: func(context.Context, *User) error {
			return platformerrors.NewError(platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict, "user already exists", nil)
		},
	}
	svc, _ := newTestService(repo)

	_, err := svc.Signup(context.Background(), "dave", "dave@example.com", "secret")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict) {
		t.Errorf("Signup() error = %v, want CONFLICT", err)
	}
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	known := &User{ID: 7, Username: "dave", Email: "dave@example.com", PasswordHash: hash}
	repo := &mockRepository{
		FindByEmailFunc: func(_ context.Context, email string) (*User, error) {
			if email == known.Email {
				return known, nil
			}
			return nil, nil
		},
	}
	svc, sessions := newTestService(repo)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "secret")
		if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			t.Errorf("Login() error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), known.Email, "wrong")
		if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized) {
			t.Errorf("Login() error = %v, want UNAUTHORIZED", err)
		}
	})

	t.Run("success opens session", func(t *testing.T) {
		session, err := svc.Login(context.Background(), known.Email, "secret")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		got, err := sessions.Get(session.Token)
		if err != nil {
			t.Fatalf("session not stored: %v", err)
		}
		if got.UserID != 7 || got.Username != "dave" {
			t.Errorf("session = (%d, %q), want (7, dave)", got.UserID, got.Username)
		}
	})
}

func TestDeleteAccount(t *testing.T) {
	known := &User{ID: 7, Username: "dave"}
	repo := &mockRepository{
		FindByIDFunc: func(_ context.Context, id uint) (*User, error) {
			if id == known.ID {
				return known, nil
			}
			return nil, nil
		},
	}
	svc, sessions := newTestService(repo)
	session := sessions.Create(known.ID, known.Username)

	if err := svc.DeleteAccount(context.Background(), known.ID); err != nil {
		t.Fatalf("DeleteAccount() error = %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != known.ID {
		t.Errorf("deleted = %v, want [7]", repo.deleted)
	}
	if _, err := sessions.Get(session.Token); err == nil {
		t.Error("session survived account deletion")
	}

	err := svc.DeleteAccount(context.Background(), 99)
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("DeleteAccount(unknown) error = %v, want NOT_FOUND", err)
	}
}

func TestWebDAVCredentials(t *testing.T) {
	want := []Credentials{
		{Username: "dave", PasswordHash: "$2a$10$x"},
		{Username: "carol", PasswordHash: "$2a$10$y"},
	}
	repo := &mockRepository{
		ListCredentialsFunc: func(context.Context) ([]Credentials, error) {
			return want, nil
		},
	}
	svc, _ := newTestService(repo)

	got, err := svc.WebDAVCredentials(context.Background())
	if err != nil {
		t.Fatalf("WebDAVCredentials() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("credentials = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("credentials[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	repo.ListCredentialsFunc = func(context.Context) ([]Credentials, error) {
		return nil, errors.New("connection refused")
	}
	if _, err := svc.WebDAVCredentials(context.Background()); err == nil {
		t.Error("WebDAVCredentials() swallowed the repository error")
	}
}
