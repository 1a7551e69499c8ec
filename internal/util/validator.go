package util

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidateEmail 验证邮箱格式（RFC 5322 地址，不带显示名）
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if len(email) > 255 {
		return fmt.Errorf("email too long, max 255 characters")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	if addr.Address != email {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword 验证密码（8-72 位；72 是 bcrypt 的输入上限）
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password too short, min 8 characters")
	}
	if len(password) > 72 {
		return fmt.Errorf("password too long, max 72 characters")
	}
	return nil
}

// ValidateYear 验证出版年份（正数且不超过四位数年份范围）
func ValidateYear(year int) error {
	if year <= 0 {
		return fmt.Errorf("year must be positive, got %d", year)
	}
	if year > 9999 {
		return fmt.Errorf("year too large, got %d", year)
	}
	return nil
}

// ValidateTitle 验证书名（不能为空且长度合理）
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is empty")
	}
	if len(title) > 255 {
		return fmt.Errorf("title too long, max 255 characters")
	}
	return nil
}
