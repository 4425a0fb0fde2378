package auth

import (
	"strconv"
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	hash, err := svc.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("password must not be stored in the clear")
	}

	if !svc.CheckPassword(hash, "hunter2") {
		t.Error("correct password rejected")
	}
	if svc.CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestIssueAndParseToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("expected user-123, got %q", claims.UserID)
	}
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	if _, err := svc.ParseToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}

	other := NewService("different-secret", time.Hour)
	token, err := other.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if _, err := svc.ParseToken(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	svc := NewService("test-secret", time.Nanosecond)

	token, err := svc.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := svc.ParseToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestGenerateOTPRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		if err != nil {
			t.Fatalf("GenerateOTP failed: %v", err)
		}
		if len(otp) != 6 {
			t.Fatalf("expected 6 digits, got %q", otp)
		}
		n, err := strconv.Atoi(otp)
		if err != nil {
			t.Fatalf("otp is not numeric: %q", otp)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("otp out of range: %d", n)
		}
	}
}
