package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/users/auth/dto"
	helper "absensiku_backend/internals/helpers"
)

type AuthController struct {
	validate *validator.Validate
}

func NewAuthController() *AuthController {
	return &AuthController{validate: validator.New()}
}

/* ===================== ISSUE TOKEN ===================== */
// POST /api/auth/token
// Mode open: token identitas untuk nama apa pun (dipakai sebagai actor
// jurnal). Mode owner: hanya OWNER_NAME + owner key yang cocok dengan
// bcrypt hash di env yang dapat token.
func (ctrl *AuthController) IssueToken(c *fiber.Ctx) error {
	var req dto.IssueTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if configs.AuthMode == "owner" {
		if req.CallerName != configs.OwnerName {
			return helper.Error(c, fiber.StatusForbidden, "Hanya owner yang bisa minta token di mode owner")
		}
		if configs.OwnerKeyHash == "" {
			log.Println("[ERROR] OWNER_KEY_HASH kosong di mode owner")
			return helper.Error(c, fiber.StatusInternalServerError, "Konfigurasi owner belum lengkap")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(configs.OwnerKeyHash), []byte(req.OwnerKey)); err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Owner key salah")
		}
	}

	token, err := helper.IssueCallerToken(configs.JWTSecret, req.CallerName, helper.AccessTokenTTL)
	if err != nil {
		log.Printf("[ERROR] Gagal terbitkan token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	return helper.Success(c, "Token diterbitkan", dto.IssueTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(helper.AccessTokenTTL.Seconds()),
	})
}
