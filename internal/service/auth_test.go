package service

import (
	"context"
	"errors"
	"testing"

	"bookvault/internal/apperr"
	"bookvault/internal/util"
)

func TestRegisterThenLogin(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(t, db)
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice@example.com", "pw123456")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == "" {
		t.Fatal("registered user must have an id")
	}
	if user.Email != "alice@example.com" {
		t.Errorf("Email = %q, want alice@example.com", user.Email)
	}

	token, loggedIn, err := auth.Login(ctx, "alice@example.com", "pw123456")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login user id = %q, want %q", loggedIn.ID, user.ID)
	}

	// token claims decode to the same identity Register returned
	claims, err := util.ParseToken("service-test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("claims.UserID = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("claims.Email = %q, want %q", claims.Email, user.Email)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(t, db)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "bob@example.com", "pw123456"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	// regardless of password
	_, err := auth.Register(ctx, "bob@example.com", "completely-different")
	if !errors.Is(err, apperr.ErrDuplicateEmail) {
		t.Errorf("second Register error = %v, want ErrDuplicateEmail", err)
	}
}

func TestRegister_EmailIsCaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(t, db)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "carol@example.com", "pw123456"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// stored comparison is exact match
	if _, _, err := auth.Login(ctx, "CAROL@example.com", "pw123456"); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("login with different casing error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_Indistinguishable(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(t, db)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "dave@example.com", "pw123456"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// wrong password for an existing account
	_, _, errWrongPwd := auth.Login(ctx, "dave@example.com", "wrong-password")
	// no such account at all
	_, _, errNoUser := auth.Login(ctx, "nobody@example.com", "pw123456")

	if !errors.Is(errWrongPwd, apperr.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", errWrongPwd)
	}
	if !errors.Is(errNoUser, apperr.ErrInvalidCredentials) {
		t.Errorf("missing user error = %v, want ErrInvalidCredentials", errNoUser)
	}
	// both paths yield the exact same outward signal
	if errWrongPwd.Error() != errNoUser.Error() {
		t.Errorf("errors must be indistinguishable: %q vs %q", errWrongPwd, errNoUser)
	}
}

func TestResolveIdentity(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(t, db)
	ctx := context.Background()

	user, err := auth.Register(ctx, "erin@example.com", "pw123456")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resolved, err := auth.ResolveIdentity(ctx, user.ID)
	if err != nil {
		t.Fatalf("ResolveIdentity failed: %v", err)
	}
	if resolved.Email != "erin@example.com" {
		t.Errorf("resolved email = %q", resolved.Email)
	}

	_, err = auth.ResolveIdentity(ctx, "no-such-id")
	if !errors.Is(err, apperr.ErrUnknownIdentity) {
		t.Errorf("unknown id error = %v, want ErrUnknownIdentity", err)
	}
}
