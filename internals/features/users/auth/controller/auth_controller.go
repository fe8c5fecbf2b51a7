package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	dto "campushub_backend/internals/features/users/auth/dto"
	model "campushub_backend/internals/features/users/auth/model"
	helper "campushub_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

const tokenTTL = 12 * time.Hour

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("user_email = ?", req.Email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	expiresAt := time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.UserRole,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}
	if user.UserFacultyID != nil {
		claims["faculty_id"] = user.UserFacultyID.String()
	}
	if user.UserStudentID != nil {
		claims["student_id"] = user.UserStudentID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not sign token")
	}

	return helper.JsonOK(c, "login successful", dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		UserID:      user.UserID,
		Role:        user.UserRole,
	})
}

// POST /api/admin/users (admin only, guarded at the route group)
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not hash password")
	}

	user := model.UserModel{
		UserEmail:     req.Email,
		UserPassword:  string(hash),
		UserRole:      req.Role,
		UserFacultyID: req.FacultyID,
		UserStudentID: req.StudentID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		code, msg := helper.MapPGError(err, "a user with this email already exists")
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonCreated(c, "user registered", user)
}
