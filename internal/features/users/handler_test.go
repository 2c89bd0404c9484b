package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/DexterPressley/calzone/internal/pkg/token"
	apperrors "github.com/DexterPressley/calzone/pkg/errors"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type mockStore struct {
	createFunc                  func(ctx context.Context, user *User) error
	findByEmailFunc             func(ctx context.Context, email string) (*User, error)
	findByUsernameFunc          func(ctx context.Context, username string) (*User, error)
	findByVerificationTokenFunc func(ctx context.Context, token string) (*User, error)
	findByResetTokenFunc        func(ctx context.Context, token string) (*User, error)
	markVerifiedFunc            func(ctx context.Context, userID int64) error
	setVerificationTokenFunc    func(ctx context.Context, userID int64, token string, expires time.Time) error
	setResetTokenFunc           func(ctx context.Context, userID int64, token string, expires time.Time) error
	updatePasswordFunc          func(ctx context.Context, userID int64, passwordHash string) error
	updateCalorieGoalFunc       func(ctx context.Context, userID int64, goal int) error
	updateMacroGoalsFunc        func(ctx context.Context, userID int64, fields bson.M) (*User, error)
	updateRolloverTimeFunc      func(ctx context.Context, userID int64, rollover string) error
}

func (m *mockStore) Create(ctx context.Context, user *User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) FindByVerificationToken(ctx context.Context, token string) (*User, error) {
	if m.findByVerificationTokenFunc != nil {
		return m.findByVerificationTokenFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) FindByResetToken(ctx context.Context, token string) (*User, error) {
	if m.findByResetTokenFunc != nil {
		return m.findByResetTokenFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) MarkVerified(ctx context.Context, userID int64) error {
	if m.markVerifiedFunc != nil {
		return m.markVerifiedFunc(ctx, userID)
	}
	return errors.New("not implemented")
}

func (m *mockStore) SetVerificationToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	if m.setVerificationTokenFunc != nil {
		return m.setVerificationTokenFunc(ctx, userID, token, expires)
	}
	return errors.New("not implemented")
}

func (m *mockStore) SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	if m.setResetTokenFunc != nil {
		return m.setResetTokenFunc(ctx, userID, token, expires)
	}
	return errors.New("not implemented")
}

func (m *mockStore) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, userID, passwordHash)
	}
	return errors.New("not implemented")
}

func (m *mockStore) UpdateCalorieGoal(ctx context.Context, userID int64, goal int) error {
	if m.updateCalorieGoalFunc != nil {
		return m.updateCalorieGoalFunc(ctx, userID, goal)
	}
	return errors.New("not implemented")
}

func (m *mockStore) UpdateMacroGoals(ctx context.Context, userID int64, fields bson.M) (*User, error) {
	if m.updateMacroGoalsFunc != nil {
		return m.updateMacroGoalsFunc(ctx, userID, fields)
	}
	return nil, errors.New("not implemented")
}

func (m *mockStore) UpdateRolloverTime(ctx context.Context, userID int64, rollover string) error {
	if m.updateRolloverTimeFunc != nil {
		return m.updateRolloverTimeFunc(ctx, userID, rollover)
	}
	return errors.New("not implemented")
}

type mockMailer struct {
	verificationSent bool
	usernameSent     bool
	resetSent        bool
	sendErr          error
}

func (m *mockMailer) SendVerificationEmail(ctx context.Context, to, verificationToken, firstName string) error {
	m.verificationSent = true
	return m.sendErr
}

func (m *mockMailer) SendUsernameEmail(ctx context.Context, to, username, firstName string) error {
	m.usernameSent = true
	return m.sendErr
}

func (m *mockMailer) SendPasswordResetEmail(ctx context.Context, to, resetToken, firstName string) error {
	m.resetSent = true
	return m.sendErr
}

// =============================================================================
// Helpers
// =============================================================================

func setupRouter(store Store, mail Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens := token.NewService("test-secret", 0)
	handler := NewHandler(store, tokens, mail)

	r := gin.New()
	api := r.Group("/api")
	RegisterPublicRoutes(api, handler)

	owner := api.Group("/users/:userId")
	owner.Use(func(c *gin.Context) {
		c.Set("userID", int64(1))
	})
	RegisterOwnerRoutes(owner, handler)

	return r
}

func doJSON(r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// =============================================================================
// Register
// =============================================================================

func TestRegisterHashesPasswordAndNormalizes(t *testing.T) {
	var created *User
	store := &mockStore{
		findByEmailFunc:    func(ctx context.Context, email string) (*User, error) { return nil, nil },
		findByUsernameFunc: func(ctx context.Context, username string) (*User, error) { return nil, nil },
		createFunc: func(ctx context.Context, user *User) error {
			user.UserID = 1
			created = user
			return nil
		},
	}
	mail := &mockMailer{}
	r := setupRouter(store, mail)

	w := doJSON(r, "POST", "/api/register", RegisterRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Username:  "Alice",
		Email:     "Alice@X.com",
		Password:  "pw123456",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)

	// Hashed, never the plaintext.
	require.NotEqual(t, "pw123456", created.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("pw123456")))

	require.Equal(t, "alice", created.Username)
	require.Equal(t, "alice@x.com", created.Email)
	require.False(t, created.IsVerified)
	require.NotEmpty(t, created.VerificationToken)
	require.NotNil(t, created.VerificationExpires)
	require.Equal(t, 2000, created.CalorieGoal)
	require.Equal(t, "00:00", created.DayRolloverTime)
	require.True(t, mail.verificationSent)

	body := decode(t, w)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(1), body["userId"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := &mockStore{
		findByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			return &User{UserID: 1, Email: email}, nil
		},
	}
	r := setupRouter(store, &mockMailer{})

	w := doJSON(r, "POST", "/api/register", RegisterRequest{
		FirstName: "Alice", LastName: "Smith", Username: "alice2",
		Email: "alice@x.com", Password: "pw123456",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "User with this email already exists", decode(t, w)["error"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := &mockStore{
		findByEmailFunc: func(ctx context.Context, email string) (*User, error) { return nil, nil },
		findByUsernameFunc: func(ctx context.Context, username string) (*User, error) {
			return &User{UserID: 1, Username: username}, nil
		},
	}
	r := setupRouter(store, &mockMailer{})

	w := doJSON(r, "POST", "/api/register", RegisterRequest{
		FirstName: "Alice", LastName: "Smith", Username: "alice",
		Email: "other@x.com", Password: "pw123456",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "This username already exists", decode(t, w)["error"])
}

func TestRegisterRacedDuplicateReportsConflictedField(t *testing.T) {
	// Both pre-checks pass, then the insert hits a unique index. The
	// re-check decides which field the conflict message names.
	emailLookups := 0
	store := &mockStore{
		findByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			emailLookups++
			if emailLookups > 1 {
				return &User{UserID: 1, Email: email}, nil
			}
			return nil, nil
		},
		findByUsernameFunc: func(ctx context.Context, username string) (*User, error) { return nil, nil },
		createFunc:         func(ctx context.Context, user *User) error { return apperrors.ErrDuplicate },
	}
	r := setupRouter(store, &mockMailer{})

	w := doJSON(r, "POST", "/api/register", RegisterRequest{
		FirstName: "Alice", LastName: "Smith", Username: "alice",
		Email: "alice@x.com", Password: "pw123456",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "User with this email already exists", decode(t, w)["error"])

	// Same race, but the email re-check comes back empty: the username
	// index must have been the one that fired.
	store = &mockStore{
		findByEmailFunc:    func(ctx context.Context, email string) (*User, error) { return nil, nil },
		findByUsernameFunc: func(ctx context.Context, username string) (*User, error) { return nil, nil },
		createFunc:         func(ctx context.Context, user *User) error { return apperrors.ErrDuplicate },
	}
	r = setupRouter(store, &mockMailer{})

	w = doJSON(r, "POST", "/api/register", RegisterRequest{
		FirstName: "Alice", LastName: "Smith", Username: "alice",
		Email: "alice@x.com", Password: "pw123456",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "This username already exists", decode(t, w)["error"])
}

func TestRegisterValidation(t *testing.T) {
	r := setupRouter(&mockStore{}, &mockMailer{})

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing fields", RegisterRequest{Username: "alice"}},
		{"short password", RegisterRequest{FirstName: "A", LastName: "S", Username: "alice", Email: "a@x.com", Password: "pw"}},
		{"bad email", RegisterRequest{FirstName: "A", LastName: "S", Username: "alice", Email: "nope", Password: "pw123456"}},
		{"bad username", RegisterRequest{FirstName: "A", LastName: "S", Username: "a!", Email: "a@x.com", Password: "pw123456"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, "POST", "/api/register", tt.req)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterSucceedsWhenEmailFails(t *testing.T) {
	store := &mockStore{
		findByEmailFunc:    func(ctx context.Context, email string) (*User, error) { return nil, nil },
		findByUsernameFunc: func(ctx context.Context, username string) (*User, error) { return nil, nil },
		createFunc: func(ctx context.Context, user *User) error {
			user.UserID = 2
			return nil
		},
	}
	mail := &mockMailer{sendErr: errors.New("ses unavailable")}
	r := setupRouter(store, mail)

	w := doJSON(r, "POST", "/api/register", RegisterRequest{
		FirstName: "Alice", LastName: "Smith", Username: "alice",
		Email: "alice@x.com", Password: "pw123456",
	})

	require.Equal(t, http.StatusCreated, w.Code)
}

// =============================================================================
// Login
// =============================================================================

func verifiedUser(t *testing.T, password string) *User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return &User{
		UserID:     1,
		FirstName:  "Alice",
		LastName:   "Smith",
		Username:   "alice",
		Email:      "alice@x.com",
		Password:   string(hashed),
		IsVerified: true,
	}
}

func TestLoginSuccess(t *testing.T) {
	user := verifiedUser(t, "pw123456")
	store := &mockStore{
		findByUsernameFunc: func(ctx context.Context, username string) (*User, error) {
			if username == "alice" {
				return user, nil
			}
			return nil, nil
		},
	}
	r := setupRouter(store, &mockMailer{})

	// Username case and padding are normalized before lookup.
	w := doJSON(r, "POST", "/api/login", LoginRequest{Username: "  Alice  ", Password: "pw123456"})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(1), body["userId"])
	require.Equal(t, "alice", body["username"])
	require.NotEmpty(t, body["accessToken"])

	tokens := token.NewService("test-secret", 0)
	claims, err := tokens.Claims(body["accessToken"].(string))
	require.NoError(t, err)
	require.Equal(t, int64(1), claims.UserID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	user := verifiedUser(t, "pw123456")
	store := &mockStore{
		findByUsernameFunc: func(ctx context.Context, username string) (*User, error) {
			if username == "alice" {
				return user, nil
			}
			return nil, nil
		},
	}
	r := setupRouter(store, &mockMailer{})

	unknown := doJSON(r, "POST", "/api/login", LoginRequest{Username: "nobody", Password: "pw123456"})
	wrongPw := doJSON(r, "POST", "/api/login", LoginRequest{Username: "alice", Password: "wrong-pw"})

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	require.JSONEq(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestLoginUnverifiedRejected(t *testing.T) {
	user := verifiedUser(t, "pw123456")
	user.IsVerified = false
	store := &mockStore{
		findByUsernameFunc: func(ctx context.Context, username string) (*User, error) { return user, nil },
	}
	r := setupRouter(store, &mockMailer{})

	w := doJSON(r, "POST", "/api/login", LoginRequest{Username: "alice", Password: "pw123456"})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, decode(t, w)["error"], "not yet verified")
}

func TestLoginMissingCredentials(t *testing.T) {
	r := setupRouter(&mockStore{}, &mockMailer{})

	w := doJSON(r, "POST", "/api/login", LoginRequest{Username: "  ", Password: ""})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

// =============================================================================
// Email verification and password reset
// =============================================================================

func TestVerifyEmail(t *testing.T) {
	marked := int64(0)
	store := &mockStore{
		findByVerificationTokenFunc: func(ctx context.Context, tok string) (*User, error) {
			if tok == "good-token" {
				return &User{UserID: 3}, nil
			}
			return nil, nil
		},
		markVerifiedFunc: func(ctx context.Context, userID int64) error {
			marked = userID
			return nil
		},
	}
	r := setupRouter(store, &mockMailer{})

	w := doJSON(r, "POST", "/api/verify-email", VerifyEmailRequest{Token: "good-token"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(3), marked)

	w = doJSON(r, "POST", "/api/verify-email", VerifyEmailRequest{Token: "expired-token"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid or expired verification token", decode(t, w)["error"])

	w = doJSON(r, "POST", "/api/verify-email", VerifyEmailRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResendVerificationReissuesToken(t *testing.T) {
	var storedToken string
	var storedExpiry time.Time
	store := &mockStore{
		findByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			return &User{UserID: 4, Email: email, FirstName: "Alice", IsVerified: false}, nil
		},
		setVerificationTokenFunc: func(ctx context.Context, userID int64, tok string, expires time.Time) error {
			require.Equal(t, int64(4), userID)
			storedToken = tok
			storedExpiry = expires
			return nil
		},
	}
	mail := &mockMailer{}
	r := setupRouter(store, mail)

	w := doJSON(r, "POST", "/api/resend-verification", EmailRequest{Email: "Alice@X.com"})

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, storedToken, 64)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), storedExpiry, time.Minute)
	require.True(t, mail.verificationSent)
}

func TestResendVerificationIsGenericEitherWay(t *testing.T) {
	store := &mockStore{
		findByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			if email == "verified@x.com" {
				return &User{UserID: 1, Email: email, IsVerified: true}, nil
			}
			return nil, nil
		},
	}
	mail := &mockMailer{}
	r := setupRouter(store, mail)

	verified := doJSON(r, "POST", "/api/resend-verification", EmailRequest{Email: "verified@x.com"})
	unknown := doJSON(r, "POST", "/api/resend-verification", EmailRequest{Email: "nobody@x.com"})

	require.Equal(t, http.StatusOK, verified.Code)
	require.Equal(t, http.StatusOK, unknown.Code)
	require.JSONEq(t, verified.Body.String(), unknown.Body.String())

	// Neither case issues a token or sends mail.
	require.False(t, mail.verificationSent)

	w := doJSON(r, "POST", "/api/resend-verification", EmailRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResendVerificationSucceedsWhenEmailFails(t *testing.T) {
	store := &mockStore{
		findByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			return &User{UserID: 4, Email: email, IsVerified: false}, nil
		},
		setVerificationTokenFunc: func(ctx context.Context, userID int64, tok string, expires time.Time) error {
			return nil
		},
	}
	mail := &mockMailer{sendErr: errors.New("ses unavailable")}
	r := setupRouter(store, mail)

	w := doJSON(r, "POST", "/api/resend-verification", EmailRequest{Email: "alice@x.com"})

	require.Equal(t, http.StatusOK, w.Code)
}

func TestForgotUsernameIsGenericEitherWay(t *testing.T) {
	store := &mockStore{
		findByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			if email == "alice@x.com" {
				return &User{UserID: 1, Username: "alice", Email: email, FirstName: "Alice"}, nil
			}
			return nil, nil
		},
	}
	mail := &mockMailer{}
	r := setupRouter(store, mail)

	known := doJSON(r, "POST", "/api/forgot-username", EmailRequest{Email: "alice@x.com"})
	unknown := doJSON(r, "POST", "/api/forgot-username", EmailRequest{Email: "nobody@x.com"})

	require.Equal(t, http.StatusOK, known.Code)
	require.Equal(t, http.StatusOK, unknown.Code)
	require.JSONEq(t, known.Body.String(), unknown.Body.String())
	require.True(t, mail.usernameSent)
}

func TestForgotPasswordStoresTokenAndSends(t *testing.T) {
	var storedToken string
	var storedExpiry time.Time
	store := &mockStore{
		findByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			return &User{UserID: 1, Email: email, FirstName: "Alice"}, nil
		},
		setResetTokenFunc: func(ctx context.Context, userID int64, tok string, expires time.Time) error {
			storedToken = tok
			storedExpiry = expires
			return nil
		},
	}
	mail := &mockMailer{}
	r := setupRouter(store, mail)

	w := doJSON(r, "POST", "/api/forgot-password", EmailRequest{Email: "alice@x.com"})

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, storedToken, 64)
	require.WithinDuration(t, time.Now().Add(time.Hour), storedExpiry, time.Minute)
	require.True(t, mail.resetSent)
}

func TestResetPassword(t *testing.T) {
	var newHash string
	store := &mockStore{
		findByResetTokenFunc: func(ctx context.Context, tok string) (*User, error) {
			if tok == "good-token" {
				return &User{UserID: 1}, nil
			}
			return nil, nil
		},
		updatePasswordFunc: func(ctx context.Context, userID int64, passwordHash string) error {
			newHash = passwordHash
			return nil
		},
	}
	r := setupRouter(store, &mockMailer{})

	w := doJSON(r, "POST", "/api/reset-password", ResetPasswordRequest{
		Token: "good-token", NewPassword: "newpw123", ConfirmPassword: "newpw123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newpw123")))

	w = doJSON(r, "POST", "/api/reset-password", ResetPasswordRequest{
		Token: "bad-token", NewPassword: "newpw123", ConfirmPassword: "newpw123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "POST", "/api/reset-password", ResetPasswordRequest{
		Token: "good-token", NewPassword: "newpw123", ConfirmPassword: "different",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Passwords do not match", decode(t, w)["error"])
}

// =============================================================================
// Goals
// =============================================================================

func TestUpdateCalorieGoal(t *testing.T) {
	updated := -1
	store := &mockStore{
		updateCalorieGoalFunc: func(ctx context.Context, userID int64, goal int) error {
			updated = goal
			return nil
		},
	}
	r := setupRouter(store, &mockMailer{})

	goal := 1800
	w := doJSON(r, "PATCH", "/api/users/1/calorie-goal", CalorieGoalRequest{CalorieGoal: &goal})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1800, updated)

	w = doJSON(r, "PATCH", "/api/users/1/calorie-goal", CalorieGoalRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	negative := -10
	w = doJSON(r, "PATCH", "/api/users/1/calorie-goal", CalorieGoalRequest{CalorieGoal: &negative})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMacroGoals(t *testing.T) {
	store := &mockStore{
		updateMacroGoalsFunc: func(ctx context.Context, userID int64, fields bson.M) (*User, error) {
			return &User{UserID: userID, ProteinGoal: 150, CarbsGoal: 100, FatGoal: 100}, nil
		},
	}
	r := setupRouter(store, &mockMailer{})

	protein := 150
	w := doJSON(r, "PATCH", "/api/users/1/macro-goals", MacroGoalsRequest{ProteinGoal: &protein})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, float64(150), body["proteinGoal"])

	w = doJSON(r, "PATCH", "/api/users/1/macro-goals", MacroGoalsRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "At least one macro goal is required", decode(t, w)["error"])
}

func TestUpdateRolloverTime(t *testing.T) {
	store := &mockStore{
		updateRolloverTimeFunc: func(ctx context.Context, userID int64, rollover string) error {
			return nil
		},
	}
	r := setupRouter(store, &mockMailer{})

	w := doJSON(r, "PATCH", "/api/users/1/rollover-time", RolloverTimeRequest{DayRolloverTime: "04:00"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "PATCH", "/api/users/1/rollover-time", RolloverTimeRequest{DayRolloverTime: "25:00"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "PATCH", "/api/users/1/rollover-time", RolloverTimeRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
