package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/tuladigital/tula-directory/src/models"
	"github.com/tuladigital/tula-directory/src/repositories"
	"golang.org/x/crypto/bcrypt"
)

func withStoredAdmin(t *testing.T, env *testEnv, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	stored := &models.SuperAdmin{
		ID:           1,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	env.admins.GetByEmailFunc = func(ctx context.Context, lookup string) (*models.SuperAdmin, error) {
		if lookup == stored.Email {
			return stored, nil
		}
		return nil, repositories.ErrNotFound
	}
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	withStoredAdmin(t, env, "admin@tula.gob.mx", "correct-horse")

	w := env.do(http.MethodPost, "/super-admin/login", "",
		[]byte(`{"email":"admin@tula.gob.mx","password":"correct-horse"}`))
	assertStatusCode(t, w, http.StatusOK)

	response := decodeJSON(t, w)
	token, _ := response["token"].(string)
	if token == "" {
		t.Fatal("expected a token in the login response")
	}
	if _, present := response["expires_at"]; !present {
		t.Error("expected expires_at in the login response")
	}
	admin, _ := response["admin"].(map[string]interface{})
	if admin == nil || admin["email"] != "admin@tula.gob.mx" {
		t.Errorf("expected admin identity in response, got %v", response["admin"])
	}
	if _, present := response["password_hash"]; present {
		t.Error("login response leaked the password hash")
	}

	// The issued token must pass verification and carry the identity
	claims, err := env.tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.AdminID != 1 || claims.Email != "admin@tula.gob.mx" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLogin_EmailIsNormalized(t *testing.T) {
	env := newTestEnv(t)
	withStoredAdmin(t, env, "admin@tula.gob.mx", "correct-horse")

	w := env.do(http.MethodPost, "/super-admin/login", "",
		[]byte(`{"email":"  ADMIN@Tula.gob.mx ","password":"correct-horse"}`))
	assertStatusCode(t, w, http.StatusOK)
}

func TestLogin_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{
		`{}`,
		`{"email":"admin@tula.gob.mx"}`,
		`{"password":"correct-horse"}`,
	} {
		w := env.do(http.MethodPost, "/super-admin/login", "", []byte(body))
		assertStatusCode(t, w, http.StatusBadRequest)
	}
	if len(env.admins.Calls["GetByEmail"]) != 0 {
		t.Error("store was queried for an incomplete login request")
	}
}

// Unknown email and wrong password must be indistinguishable to the
// caller
func TestLogin_FailuresShareOneBody(t *testing.T) {
	env := newTestEnv(t)
	withStoredAdmin(t, env, "admin@tula.gob.mx", "correct-horse")

	wrongPassword := env.do(http.MethodPost, "/super-admin/login", "",
		[]byte(`{"email":"admin@tula.gob.mx","password":"wrong"}`))
	unknownEmail := env.do(http.MethodPost, "/super-admin/login", "",
		[]byte(`{"email":"nobody@tula.gob.mx","password":"correct-horse"}`))

	assertStatusCode(t, wrongPassword, http.StatusUnauthorized)
	assertStatusCode(t, unknownEmail, http.StatusUnauthorized)

	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("failure bodies differ: %q vs %q",
			wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/super-admin/login", "", []byte(`{not json`))
	assertStatusCode(t, w, http.StatusBadRequest)
}
