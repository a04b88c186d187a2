package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/reelstream/reelstream-go/internal/crypto"
	"github.com/reelstream/reelstream-go/internal/model"
	"github.com/reelstream/reelstream-go/internal/repository"
)

func newAuthServiceWithMock(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
	return svc, mock
}

func TestRegisterEmptyEmail(t *testing.T) {
	svc := NewAuthService(repository.NewUserRepository(nil), "test-secret", time.Hour)

	err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "",
		Password: "secret1",
	})

	if !errors.Is(err, ErrEmailRequired) {
		t.Errorf("Register() error = %v, want ErrEmailRequired", err)
	}
}

func TestRegisterEmptyPassword(t *testing.T) {
	svc := NewAuthService(repository.NewUserRepository(nil), "test-secret", time.Hour)

	err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@x.com",
		Password: "",
	})

	if !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("Register() error = %v, want ErrPasswordRequired", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, mock := newAuthServiceWithMock(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@x.com' for key 'uq_users_email'"})

	err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register() error = %v, want ErrEmailTaken", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock := newAuthServiceWithMock(t)

	mock.ExpectQuery("SELECT id, email, password_hash").
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "missing@x.com",
		Password: "secret1",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock := newAuthServiceWithMock(t)

	hash, err := crypto.HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	now := time.Now()
	mock.ExpectQuery("SELECT id, email, password_hash").
		WithArgs("a@x.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
				AddRow(7, "a@x.com", hash, now, now),
		)

	_, err = svc.Login(context.Background(), model.LoginRequest{
		Email:    "a@x.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, mock := newAuthServiceWithMock(t)

	hash, err := crypto.HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	now := time.Now()
	mock.ExpectQuery("SELECT id, email, password_hash").
		WithArgs("a@x.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
				AddRow(7, "a@x.com", hash, now, now),
		)

	token, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	claims, err := crypto.ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("token UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("token Email = %q, want a@x.com", claims.Email)
	}
}

func TestLoginEmptyFields(t *testing.T) {
	svc := NewAuthService(repository.NewUserRepository(nil), "test-secret", time.Hour)

	if _, err := svc.Login(context.Background(), model.LoginRequest{Password: "secret1"}); !errors.Is(err, ErrEmailRequired) {
		t.Errorf("Login() error = %v, want ErrEmailRequired", err)
	}
	if _, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@x.com"}); !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("Login() error = %v, want ErrPasswordRequired", err)
	}
}
