package util

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// ============ 密码哈希测试 ============

func TestHashPassword(t *testing.T) {
	password := "MyPassword123"

	// 测试正常哈希
	hashed, err := HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("unexpected hash format: %q", hashed)
	}

	// 测试空密码
	_, err = HashPassword("", bcrypt.MinCost)
	if err == nil {
		t.Error("empty password should return error")
	}

	// 测试相同密码生成不同哈希
	hashed2, _ := HashPassword(password, bcrypt.MinCost)
	if hashed == hashed2 {
		t.Error("same password should produce different hashes (random salt)")
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	// out-of-range cost falls back to the bcrypt default
	hashed, err := HashPassword("SomePassword", 99)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPassword("SomePassword", hashed) {
		t.Error("hash with fallback cost should still verify")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "TestPass456"
	hashed, _ := HashPassword(password, bcrypt.MinCost)

	// 测试正确密码
	if !CheckPassword(password, hashed) {
		t.Error("correct password should verify")
	}

	// 测试错误密码
	if CheckPassword("WrongPass", hashed) {
		t.Error("wrong password should not verify")
	}

	// 测试空输入
	if CheckPassword("", hashed) {
		t.Error("empty password should not verify")
	}
	if CheckPassword(password, "") {
		t.Error("empty hash should not verify")
	}

	// 测试无效格式
	if CheckPassword(password, "invalid-format") {
		t.Error("invalid hash format should not verify")
	}
}
