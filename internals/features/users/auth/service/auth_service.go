// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sepcam_backend/internals/configs"
	authDTO "sepcam_backend/internals/features/users/auth/dto"
	authModel "sepcam_backend/internals/features/users/auth/model"
	authRepo "sepcam_backend/internals/features/users/auth/repository"
	helper "sepcam_backend/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

/* ==========================
   TOKEN ISSUING
========================== */

func IssueAccessToken(user *authModel.UserModel) (string, time.Time, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", time.Time{}, errors.New("JWT secret not configured")
	}

	exp := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"email":     user.Email,
		"iat":       time.Now().Unix(),
		"exp":       exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

/* ==========================
   REGISTER
========================== */
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFieldErrors(err))
	}

	username := strings.ToLower(strings.TrimSpace(req.UserName))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if exists, err := authRepo.UsernameExists(db, username); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check username")
	} else if exists {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username already exists")
	}
	if exists, err := authRepo.EmailExists(db, email); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	} else if exists {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email already exists")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := &authModel.UserModel{
		UserName: username,
		Email:    email,
		Password: hash,
		IsActive: true,
	}
	if err := authRepo.CreateUser(db, user); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username or email already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	signed, _, err := IssueAccessToken(user)
	if err != nil {
		log.Println("[ERROR] issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonCreated(c, "User created successfully", fiber.Map{
		"token":     signed,
		"user_id":   user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

/* ==========================
   LOGIN
========================== */
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFieldErrors(err))
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if err := CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	signed, _, err := IssueAccessToken(user)
	if err != nil {
		log.Println("[ERROR] issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token":     signed,
		"user_id":   user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

/* ==========================
   LOGOUT
========================== */
// POST /api/auth/logout — blacklist the presented token until its expiry.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
	}

	// best-effort exp so the cleanup scheduler can purge the row
	expiredAt := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expF, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expF), 0)
		}
	}

	if err := authRepo.BlacklistToken(db, raw, expiredAt); err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonOK(c, "Successfully logged out", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log out")
	}
	return helper.JsonOK(c, "Successfully logged out", nil)
}

/* ==========================
   PASSWORD HELPERS
========================== */

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
