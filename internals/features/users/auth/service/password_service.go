package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "vahanhub_backend/internals/features/users/auth/helper"
	authRepo "vahanhub_backend/internals/features/users/auth/repository"
	helper "vahanhub_backend/internals/helpers"
	helperAuth "vahanhub_backend/internals/helpers/auth"
)

/* ==========================
   RESET PASSWORD (by email, unauthenticated)
========================== */

func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email       string `json:"email"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if err := authHelper.ValidateResetPassword(input.Email, input.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		// do not leak which emails exist
		return helper.JsonOK(c, "If the email is registered, the password has been reset", nil)
	}

	hash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	if err := authRepo.UpdateUserPassword(db, user.ID, hash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	// every session dies with the old password
	_ = authRepo.RevokeAllRefreshTokensForUser(db, user.ID)

	return helper.JsonOK(c, "If the email is registered, the password has been reset", nil)
}

/* ==========================
   CHANGE PASSWORD (authenticated)
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusBadRequest, "New password must be at least 8 characters")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.OldPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Old password incorrect")
	}

	hash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	if err := authRepo.UpdateUserPassword(db, user.ID, hash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	_ = authRepo.RevokeAllRefreshTokensForUser(db, user.ID)

	return helper.JsonOK(c, "Password changed successfully", nil)
}
