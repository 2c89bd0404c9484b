// ================== internal/features/users/handler.go ==================
package users

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/DexterPressley/calzone/internal/pkg/response"
	"github.com/DexterPressley/calzone/internal/pkg/token"
	apperrors "github.com/DexterPressley/calzone/pkg/errors"
)

const (
	verificationTokenTTL = 24 * time.Hour
	resetTokenTTL        = time.Hour
)

// Store is the persistence surface the handler needs. *Repository
// implements it.
type Store interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByVerificationToken(ctx context.Context, token string) (*User, error)
	FindByResetToken(ctx context.Context, token string) (*User, error)
	MarkVerified(ctx context.Context, userID int64) error
	SetVerificationToken(ctx context.Context, userID int64, token string, expires time.Time) error
	SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateCalorieGoal(ctx context.Context, userID int64, goal int) error
	UpdateMacroGoals(ctx context.Context, userID int64, fields bson.M) (*User, error)
	UpdateRolloverTime(ctx context.Context, userID int64, rollover string) error
}

// Mailer is the outbound email surface. mailer.Mailer implements it.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, verificationToken, firstName string) error
	SendUsernameEmail(ctx context.Context, to, username, firstName string) error
	SendPasswordResetEmail(ctx context.Context, to, resetToken, firstName string) error
}

type Handler struct {
	store  Store
	tokens *token.Service
	mail   Mailer
}

func NewHandler(store Store, tokens *token.Service, mail Mailer) *Handler {
	return &Handler{store: store, tokens: tokens, mail: mail}
}

// recoveryToken returns 32 random bytes hex-encoded, used for both email
// verification and password reset links.
func recoveryToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Register godoc
// @Summary Register a new account
// @Description Create an account and send the email verification link
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))

	existing, err := h.store.FindByEmail(c.Request.Context(), email)
	if err != nil {
		response.DatabaseError(c, "Server error during registration")
		return
	}
	if existing != nil {
		response.Conflict(c, "User with this email already exists")
		return
	}

	existing, err = h.store.FindByUsername(c.Request.Context(), username)
	if err != nil {
		response.DatabaseError(c, "Server error during registration")
		return
	}
	if existing != nil {
		response.Conflict(c, "This username already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Server error during registration")
		return
	}

	verification, err := recoveryToken()
	if err != nil {
		response.InternalServerError(c, "Server error during registration")
		return
	}
	verificationExpires := time.Now().Add(verificationTokenTTL)

	user := &User{
		FirstName:           strings.TrimSpace(req.FirstName),
		LastName:            strings.TrimSpace(req.LastName),
		Username:            username,
		Email:               email,
		Password:            string(hashed),
		IsVerified:          false,
		VerificationToken:   verification,
		VerificationExpires: &verificationExpires,
		CalorieGoal:         2000,
		ProteinGoal:         100,
		CarbsGoal:           100,
		FatGoal:             100,
		DayRolloverTime:     "00:00",
	}

	if err := h.store.Create(c.Request.Context(), user); err != nil {
		// The existence checks above can race with a concurrent
		// registration; the unique indexes are authoritative. Re-check the
		// email lookup to report which field actually conflicted.
		if err == apperrors.ErrDuplicate {
			if taken, lookupErr := h.store.FindByEmail(c.Request.Context(), email); lookupErr == nil && taken != nil {
				response.Conflict(c, "User with this email already exists")
				return
			}
			response.Conflict(c, "This username already exists")
			return
		}
		response.DatabaseError(c, "Server error during registration")
		return
	}

	// Best-effort: the account exists either way and can request a resend.
	if err := h.mail.SendVerificationEmail(c.Request.Context(), email, verification, user.FirstName); err != nil {
		log.Printf("Error sending verification email: %v", err)
	}

	response.Created(c, RegisterResponse{
		Success: true,
		Message: "User registered successfully. Please check your email to verify your account.",
		UserID:  user.UserID,
	})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	password := strings.TrimSpace(req.Password)

	if username == "" || password == "" {
		response.BadRequest(c, "Username and Password are required")
		return
	}

	user, err := h.store.FindByUsername(c.Request.Context(), username)
	if err != nil {
		response.DatabaseError(c, "Server error during login")
		return
	}

	// Unknown username and wrong password answer identically so the
	// response never reveals which field was wrong.
	if user == nil {
		response.Unauthorized(c, "Username/Password incorrect")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		response.Unauthorized(c, "Username/Password incorrect")
		return
	}

	if !user.IsVerified {
		response.Unauthorized(c, "Your email is not yet verified. Please check your inbox.")
		return
	}

	accessToken, err := h.tokens.Issue(user.UserID, user.FirstName, user.LastName)
	if err != nil {
		log.Printf("Token issue error: %v", err)
		response.InternalServerError(c, "Server error during login")
		return
	}

	response.Success(c, LoginResponse{
		Success:     true,
		AccessToken: accessToken,
		UserID:      user.UserID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Username:    user.Username,
	})
}

// VerifyEmail godoc
// @Summary Verify an email address
// @Description Redeem the emailed verification token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyEmailRequest true "Verification token"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /verify-email [post]
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if req.Token == "" {
		response.BadRequest(c, "Verification token is required")
		return
	}

	user, err := h.store.FindByVerificationToken(c.Request.Context(), req.Token)
	if err != nil {
		response.DatabaseError(c, "Server error during email verification")
		return
	}
	if user == nil {
		response.BadRequest(c, "Invalid or expired verification token")
		return
	}

	if err := h.store.MarkVerified(c.Request.Context(), user.UserID); err != nil {
		response.DatabaseError(c, "Server error during email verification")
		return
	}

	response.Message(c, "Email verified successfully! You can now log in.")
}

// ResendVerification godoc
// @Summary Resend the verification email
// @Description Reissue the email verification token and send a fresh link.
// @Description The response is generic whether or not the email exists or is
// @Description already verified.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Account email"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /resend-verification [post]
func (h *Handler) ResendVerification(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		response.BadRequest(c, "Email is required")
		return
	}

	const generic = "If that email needs verification, we will send a new verification email."

	user, err := h.store.FindByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		response.DatabaseError(c, "Server error during verification resend")
		return
	}
	if user == nil || user.IsVerified {
		response.Message(c, generic)
		return
	}

	verification, err := recoveryToken()
	if err != nil {
		response.InternalServerError(c, "Server error during verification resend")
		return
	}

	if err := h.store.SetVerificationToken(c.Request.Context(), user.UserID, verification, time.Now().Add(verificationTokenTTL)); err != nil {
		response.DatabaseError(c, "Server error during verification resend")
		return
	}

	// Best-effort, as at registration time. The token is stored either way
	// and another resend can be requested.
	if err := h.mail.SendVerificationEmail(c.Request.Context(), user.Email, verification, user.FirstName); err != nil {
		log.Printf("Error sending verification email: %v", err)
	}

	response.Message(c, generic)
}

// ForgotUsername godoc
// @Summary Recover a username
// @Description Email the username to the account holder. The response is
// @Description generic whether or not the email exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Account email"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /forgot-username [post]
func (h *Handler) ForgotUsername(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		response.BadRequest(c, "Email is required")
		return
	}

	const generic = "If that email exists, we will send you a username recovery email."

	user, err := h.store.FindByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		response.DatabaseError(c, "Server error during username recovery")
		return
	}
	if user == nil {
		response.Message(c, generic)
		return
	}

	if err := h.mail.SendUsernameEmail(c.Request.Context(), user.Email, user.Username, user.FirstName); err != nil {
		log.Printf("Error sending username email: %v", err)
		response.InternalServerError(c, "Failed to send username email")
		return
	}

	response.Message(c, generic)
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Email a time-limited reset link. The response is generic
// @Description whether or not the email exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Account email"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /forgot-password [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		response.BadRequest(c, "Email is required")
		return
	}

	const generic = "If that email is in our system, we sent a password reset link."

	user, err := h.store.FindByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		response.DatabaseError(c, "Server error during password reset request")
		return
	}
	if user == nil {
		response.Message(c, generic)
		return
	}

	reset, err := recoveryToken()
	if err != nil {
		response.InternalServerError(c, "Server error during password reset request")
		return
	}

	if err := h.store.SetResetToken(c.Request.Context(), user.UserID, reset, time.Now().Add(resetTokenTTL)); err != nil {
		response.DatabaseError(c, "Server error during password reset request")
		return
	}

	if err := h.mail.SendPasswordResetEmail(c.Request.Context(), user.Email, reset, user.FirstName); err != nil {
		log.Printf("Error sending password reset email: %v", err)
		response.InternalServerError(c, "Failed to send password reset email")
		return
	}

	response.Message(c, generic)
}

// ResetPassword godoc
// @Summary Reset a password
// @Description Redeem the emailed reset token and store a new password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /reset-password [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateResetPassword(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	user, err := h.store.FindByResetToken(c.Request.Context(), req.Token)
	if err != nil {
		response.DatabaseError(c, "Server error during password reset")
		return
	}
	if user == nil {
		response.BadRequest(c, "Invalid or expired password reset token")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Server error during password reset")
		return
	}

	if err := h.store.UpdatePassword(c.Request.Context(), user.UserID, string(hashed)); err != nil {
		response.DatabaseError(c, "Server error during password reset")
		return
	}

	response.Message(c, "Password has been reset successfully. You can now log in with your new password.")
}

// UpdateCalorieGoal godoc
// @Summary Update the daily calorie goal
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body CalorieGoalRequest true "New calorie goal"
// @Success 200 {object} CalorieGoalResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{userId}/calorie-goal [patch]
func (h *Handler) UpdateCalorieGoal(c *gin.Context) {
	userID := c.GetInt64("userID")

	var req CalorieGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if req.CalorieGoal == nil {
		response.BadRequest(c, "calorieGoal is required")
		return
	}
	if *req.CalorieGoal < 0 {
		response.BadRequest(c, "calorieGoal must be a valid positive integer")
		return
	}

	if err := h.store.UpdateCalorieGoal(c.Request.Context(), userID, *req.CalorieGoal); err != nil {
		if err == apperrors.ErrNotFound {
			response.NotFound(c, "User not found")
			return
		}
		response.DatabaseError(c, "Server error updating calorie goal")
		return
	}

	response.Success(c, CalorieGoalResponse{
		Success:     true,
		Message:     "Calorie goal updated successfully",
		CalorieGoal: *req.CalorieGoal,
	})
}

// UpdateMacroGoals godoc
// @Summary Update macro goals
// @Description Update any subset of the protein, carbs and fat goals
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body MacroGoalsRequest true "New macro goals"
// @Success 200 {object} MacroGoalsResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{userId}/macro-goals [patch]
func (h *Handler) UpdateMacroGoals(c *gin.Context) {
	userID := c.GetInt64("userID")

	var req MacroGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	fields := bson.M{}
	if req.ProteinGoal != nil {
		if *req.ProteinGoal < 0 {
			response.BadRequest(c, "proteinGoal must be a valid positive integer")
			return
		}
		fields["proteinGoal"] = *req.ProteinGoal
	}
	if req.CarbsGoal != nil {
		if *req.CarbsGoal < 0 {
			response.BadRequest(c, "carbsGoal must be a valid positive integer")
			return
		}
		fields["carbsGoal"] = *req.CarbsGoal
	}
	if req.FatGoal != nil {
		if *req.FatGoal < 0 {
			response.BadRequest(c, "fatGoal must be a valid positive integer")
			return
		}
		fields["fatGoal"] = *req.FatGoal
	}

	if len(fields) == 0 {
		response.BadRequest(c, "At least one macro goal is required")
		return
	}

	user, err := h.store.UpdateMacroGoals(c.Request.Context(), userID, fields)
	if err != nil {
		if err == apperrors.ErrNotFound {
			response.NotFound(c, "User not found")
			return
		}
		response.DatabaseError(c, "Server error updating macro goals")
		return
	}

	response.Success(c, MacroGoalsResponse{
		Success:     true,
		Message:     "Macro goals updated successfully",
		ProteinGoal: user.ProteinGoal,
		CarbsGoal:   user.CarbsGoal,
		FatGoal:     user.FatGoal,
	})
}

// UpdateRolloverTime godoc
// @Summary Update the day rollover time
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body RolloverTimeRequest true "New rollover time (HH:MM)"
// @Success 200 {object} RolloverTimeResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{userId}/rollover-time [patch]
func (h *Handler) UpdateRolloverTime(c *gin.Context) {
	userID := c.GetInt64("userID")

	var req RolloverTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRolloverTime(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	if err := h.store.UpdateRolloverTime(c.Request.Context(), userID, req.DayRolloverTime); err != nil {
		if err == apperrors.ErrNotFound {
			response.NotFound(c, "User not found")
			return
		}
		response.DatabaseError(c, "Server error updating day rollover time")
		return
	}

	response.Success(c, RolloverTimeResponse{
		Success:         true,
		Message:         "Day rollover time updated successfully",
		DayRolloverTime: req.DayRolloverTime,
	})
}
