// ================== internal/features/users/model.go ==================
package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored account record. Password and the recovery tokens never
// serialize into responses.
type User struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID               int64              `bson:"userId" json:"userId" example:"1"`
	FirstName            string             `bson:"firstName" json:"firstName" example:"Alice"`
	LastName             string             `bson:"lastName" json:"lastName" example:"Smith"`
	Username             string             `bson:"username" json:"username" example:"alice"`
	Email                string             `bson:"email" json:"email" example:"alice@x.com"`
	Password             string             `bson:"password" json:"-"`
	IsVerified           bool               `bson:"isVerified" json:"isVerified" example:"true"`
	VerificationToken    string             `bson:"verificationToken,omitempty" json:"-"`
	VerificationExpires  *time.Time         `bson:"verificationExpires,omitempty" json:"-"`
	ResetPasswordToken   string             `bson:"resetPasswordToken,omitempty" json:"-"`
	ResetPasswordExpires *time.Time         `bson:"resetPasswordExpires,omitempty" json:"-"`
	CalorieGoal          int                `bson:"calorieGoal" json:"calorieGoal" example:"2000"`
	ProteinGoal          int                `bson:"proteinGoal" json:"proteinGoal" example:"100"`
	CarbsGoal            int                `bson:"carbsGoal" json:"carbsGoal" example:"100"`
	FatGoal              int                `bson:"fatGoal" json:"fatGoal" example:"100"`
	DayRolloverTime      string             `bson:"dayRolloverTime" json:"dayRolloverTime" example:"00:00"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"-"`
}

// RegisterRequest represents account creation data
type RegisterRequest struct {
	FirstName string `json:"firstName" example:"Alice"`
	LastName  string `json:"lastName" example:"Smith"`
	Username  string `json:"username" example:"alice"`
	Email     string `json:"email" example:"alice@x.com"`
	Password  string `json:"password" example:"pw123456"`
}

// RegisterResponse confirms account creation
type RegisterResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"User registered successfully. Please check your email to verify your account."`
	UserID  int64  `json:"userId" example:"1"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw123456"`
}

// LoginResponse carries the session token and identity fields
type LoginResponse struct {
	Success     bool   `json:"success" example:"true"`
	AccessToken string `json:"accessToken"`
	UserID      int64  `json:"userId" example:"1"`
	FirstName   string `json:"firstName" example:"Alice"`
	LastName    string `json:"lastName" example:"Smith"`
	Username    string `json:"username" example:"alice"`
}

// VerifyEmailRequest carries the emailed verification token
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// EmailRequest is the body of the username and password recovery endpoints
type EmailRequest struct {
	Email string `json:"email" example:"alice@x.com"`
}

// ResetPasswordRequest carries the emailed reset token and the new password
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// CalorieGoalRequest updates the daily calorie target
type CalorieGoalRequest struct {
	CalorieGoal *int `json:"calorieGoal" example:"2000"`
}

// CalorieGoalResponse echoes the stored calorie target
type CalorieGoalResponse struct {
	Success     bool   `json:"success" example:"true"`
	Message     string `json:"message" example:"Calorie goal updated successfully"`
	CalorieGoal int    `json:"calorieGoal" example:"2000"`
}

// MacroGoalsRequest updates any subset of the macro targets
type MacroGoalsRequest struct {
	ProteinGoal *int `json:"proteinGoal" example:"100"`
	CarbsGoal   *int `json:"carbsGoal" example:"100"`
	FatGoal     *int `json:"fatGoal" example:"100"`
}

// MacroGoalsResponse echoes the stored macro targets
type MacroGoalsResponse struct {
	Success     bool   `json:"success" example:"true"`
	Message     string `json:"message" example:"Macro goals updated successfully"`
	ProteinGoal int    `json:"proteinGoal" example:"100"`
	CarbsGoal   int    `json:"carbsGoal" example:"100"`
	FatGoal     int    `json:"fatGoal" example:"100"`
}

// RolloverTimeRequest updates the day rollover clock time
type RolloverTimeRequest struct {
	DayRolloverTime string `json:"dayRolloverTime" example:"04:00"`
}

// RolloverTimeResponse echoes the stored rollover time
type RolloverTimeResponse struct {
	Success         bool   `json:"success" example:"true"`
	Message         string `json:"message" example:"Day rollover time updated successfully"`
	DayRolloverTime string `json:"dayRolloverTime" example:"04:00"`
}
