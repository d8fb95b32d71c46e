package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skillswap-api/models"
	"skillswap-api/services"
	"skillswap-api/utils"
)

type AuthController struct {
	db           *gorm.DB
	jwtSecret    string
	emailService *services.EmailService
}

func NewAuthController(db *gorm.DB, jwtSecret string, emailService *services.EmailService) *AuthController {
	return &AuthController{
		db:           db,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !utils.IsValidPassword(req.Password) {
		utils.SendValidationError(c, "Password must be at least 6 characters and mix letter cases, numbers or symbols")
		return
	}

	var existingUser models.User
	if err := ac.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "Email already registered")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		// Without an email service (development) accounts start verified
		EmailVerified: ac.emailService == nil,
	}

	err = ac.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		// Every account gets a profile immediately, swap-eligible until
		// the owner says otherwise. The visibility flag is set here rather
		// than by a column default so a false value survives the insert.
		return tx.Create(&models.Profile{UserID: user.ID, IsPublic: true}).Error
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	if ac.emailService != nil {
		if _, err := ac.emailService.SendVerificationEmail(user.Email, user.Name); err != nil {
			fmt.Printf("Failed to send verification email to %s: %v\n", user.Email, err)
		}
	}

	user.Password = ""
	utils.SendCreated(c, "Registration successful! Please verify your email to complete your account setup.", user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.EmailVerified {
		utils.SendError(c, http.StatusForbidden, "Email not verified. Check your inbox for the verification code.")
		return
	}

	token, err := ac.generateJWT(user.ID, user.Email)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	user.Password = ""
	utils.SendSuccess(c, "Login successful", AuthResponse{Token: token, User: user})
}

func (ac *AuthController) Logout(c *gin.Context) {
	// Stateless tokens; the client drops the token.
	utils.SendSuccess(c, "Logged out successfully", nil)
}

func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := ac.db.Preload("Profile").Preload("Profile.SkillsOffered").Preload("Profile.SkillsWanted").
		First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	user.Password = ""
	utils.SendSuccess(c, "User retrieved successfully", user)
}

type SendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (ac *AuthController) SendVerification(c *gin.Context) {
	var req SendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	if user.EmailVerified {
		utils.SendSuccess(c, "Email already verified", nil)
		return
	}

	if ac.emailService == nil {
		utils.SendError(c, http.StatusServiceUnavailable, "Email verification is not configured")
		return
	}

	if _, err := ac.emailService.SendVerificationEmail(user.Email, user.Name); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to send verification email")
		return
	}

	utils.SendSuccess(c, "Verification email sent", nil)
}

type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

func (ac *AuthController) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if ac.emailService == nil || !ac.emailService.VerifyCode(req.Email, req.Code) {
		utils.SendError(c, http.StatusBadRequest, "Invalid or expired verification code")
		return
	}

	if err := ac.db.Model(&models.User{}).Where("email = ?", req.Email).
		Update("email_verified", true).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to verify email")
		return
	}

	utils.SendSuccess(c, "Email verified successfully", nil)
}

// GetVerificationCode is a development helper mirroring the send flow.
func (ac *AuthController) GetVerificationCode(c *gin.Context) {
	email := c.Query("email")
	if email == "" || ac.emailService == nil {
		utils.SendError(c, http.StatusNotFound, "No verification code available")
		return
	}

	code := ac.emailService.GetVerificationCode(email)
	if code == "" {
		utils.SendError(c, http.StatusNotFound, "No verification code available")
		return
	}

	utils.SendSuccess(c, "Verification code retrieved", gin.H{"email": email, "code": code})
}

func (ac *AuthController) generateJWT(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
