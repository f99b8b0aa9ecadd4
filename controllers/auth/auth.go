package authController

import (
	"coursehub-backend/config"
	"coursehub-backend/database"
	"coursehub-backend/middleware"
	"coursehub-backend/models"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authUser struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

func publicUser(u models.User) authUser {
	return authUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Register creates an account and signs the caller in
func Register(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedRegister").(*struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
	})
	if reqData == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already exists"})
	}

	role := models.RoleStudent
	if reqData.Role != "" {
		parsed, err := models.ParseRole(reqData.Role)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
		}
		role = parsed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	password := string(hashed)
	user := models.User{
		Name:     strings.TrimSpace(reqData.FirstName + " " + reqData.LastName),
		Email:    reqData.Email,
		Password: &password,
		Role:     role,
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   token,
		"user":    publicUser(user),
	})
}

// Login authenticates by email and password
func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	// Google-only accounts have no password
	if user.Password == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(reqData.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    publicUser(user),
	})
}

// GoogleLogin signs a Google account in, creating a student on first visit.
// When the client sends the Google ID token it is checked against the
// tokeninfo endpoint; the legacy client sends only email and name.
func GoogleLogin(c *fiber.Ctx) error {
	reqData := new(struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		IDToken string `json:"idToken"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if reqData.Email == "" || reqData.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and name are required"})
	}

	if reqData.IDToken != "" {
		if err := verifyGoogleIDToken(reqData.IDToken, reqData.Email); err != nil {
			log.Printf("Google token check failed for %s: %v", reqData.Email, err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid Google token"})
		}
	}

	db := database.Database.Db

	var user models.User
	err := db.Where("email = ?", reqData.Email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Name:  reqData.Name,
			Email: reqData.Email,
			Role:  models.RoleStudent,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Google login error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	} else if err != nil {
		log.Printf("Google login error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  publicUser(user),
	})
}

func verifyGoogleIDToken(idToken, email string) error {
	var info struct {
		Email string `json:"email"`
	}
	resp, err := resty.New().R().
		SetQueryParam("id_token", idToken).
		SetResult(&info).
		Get("https://oauth2.googleapis.com/tokeninfo")
	if err != nil {
		return err
	}
	if resp.StatusCode() != fiber.StatusOK {
		return fiber.NewError(resp.StatusCode(), "tokeninfo rejected the token")
	}
	if !strings.EqualFold(info.Email, email) {
		return fiber.NewError(fiber.StatusUnauthorized, "token email mismatch")
	}
	return nil
}

// Me returns the authenticated user's identity
func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"user": publicUser(user)})
}
