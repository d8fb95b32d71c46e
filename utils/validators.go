package utils

import (
	"regexp"
	"strings"
	"unicode"

	"skillswap-api/models"
)

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	// At least 3 of 4 character types required
	count := 0
	if hasUpper {
		count++
	}
	if hasLower {
		count++
	}
	if hasNumber {
		count++
	}
	if hasSpecial {
		count++
	}

	return count >= 3
}

func IsValidSkillName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

func IsValidAvailability(availability models.Availability) bool {
	for _, a := range models.ValidAvailabilities {
		if a == availability {
			return true
		}
	}
	return false
}

func IsValidVisibility(visibility models.ProfileVisibility) bool {
	for _, v := range models.ValidVisibilities {
		if v == visibility {
			return true
		}
	}
	return false
}

func IsValidSwapAction(action models.SwapStatus) bool {
	switch action {
	case models.SwapStatusAccepted, models.SwapStatusRejected,
		models.SwapStatusDeleted, models.SwapStatusCompleted:
		return true
	}
	return false
}
