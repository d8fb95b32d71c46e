package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"skillswap-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer

	// In-memory storage for verification codes
	verificationCodes map[string]VerificationCode
	mutex             sync.RWMutex
}

type VerificationCode struct {
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	service := &EmailService{
		config:            cfg,
		dialer:            dialer,
		verificationCodes: make(map[string]VerificationCode),
	}

	go service.cleanupExpiredCodes()

	return service
}

func (es *EmailService) generateVerificationCode() string {
	const digits = "0123456789"
	code := make([]byte, 4)

	for i := range code {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		code[i] = digits[num.Int64()]
	}

	return string(code)
}

// SendVerificationEmail emails a 4-digit code, reusing an unexpired one
// when present. Codes expire after 10 minutes.
func (es *EmailService) SendVerificationEmail(email, name string) (string, error) {
	es.mutex.RLock()
	existingCode, exists := es.verificationCodes[email]
	es.mutex.RUnlock()

	var code string
	if exists && !existingCode.Used && time.Now().Before(existingCode.ExpiresAt) {
		code = existingCode.Code
	} else {
		code = es.generateVerificationCode()

		es.mutex.Lock()
		es.verificationCodes[email] = VerificationCode{
			Code:      code,
			Email:     email,
			ExpiresAt: time.Now().Add(10 * time.Minute),
			Used:      false,
		}
		es.mutex.Unlock()
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "SkillSwap - Email Verification")

	textBody := fmt.Sprintf(`Hello %s!

Welcome to SkillSwap! Please verify your email address to complete your registration.

Your verification code is: %s

This code will expire in 10 minutes.

If you didn't create an account with SkillSwap, please ignore this email.

The SkillSwap Team
This is an automated email, please do not reply.
`, name, code)

	m.SetBody("text/plain", textBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return code, nil
}

// VerifyCode checks a submitted code and marks it used on success.
func (es *EmailService) VerifyCode(email, inputCode string) bool {
	es.mutex.RLock()
	storedCode, exists := es.verificationCodes[email]
	es.mutex.RUnlock()

	if !exists || storedCode.Used {
		return false
	}

	if time.Now().After(storedCode.ExpiresAt) {
		es.mutex.Lock()
		delete(es.verificationCodes, email)
		es.mutex.Unlock()
		return false
	}

	if storedCode.Code != inputCode {
		return false
	}

	es.mutex.Lock()
	storedCode.Used = true
	es.verificationCodes[email] = storedCode
	es.mutex.Unlock()

	return true
}

// GetVerificationCode exposes the current code for the debug endpoint.
func (es *EmailService) GetVerificationCode(email string) string {
	es.mutex.RLock()
	defer es.mutex.RUnlock()

	if code, exists := es.verificationCodes[email]; exists && !code.Used && time.Now().Before(code.ExpiresAt) {
		return code.Code
	}
	return ""
}

// SendSwapStatusEmail tells a participant that a swap moved to a new
// status. Failures are the caller's to log; swaps never fail on email.
func (es *EmailService) SendSwapStatusEmail(email, name, partnerName, skillOffered, skillRequested, status string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("SkillSwap - Your swap with %s was %s", partnerName, status))

	textBody := fmt.Sprintf(`Hello %s!

Your skill swap with %s (%s for %s) is now %s.

Log in to SkillSwap to see the details.

The SkillSwap Team
This is an automated email, please do not reply.
`, name, partnerName, skillOffered, skillRequested, status)

	m.SetBody("text/plain", textBody)

	return es.dialer.DialAndSend(m)
}

func (es *EmailService) cleanupExpiredCodes() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		es.mutex.Lock()
		now := time.Now()
		for email, code := range es.verificationCodes {
			if now.After(code.ExpiresAt) || code.Used {
				delete(es.verificationCodes, email)
			}
		}
		es.mutex.Unlock()
	}
}
