package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/simstore/build-advisor/internal/auth"
	"github.com/simstore/build-advisor/internal/models"
)

// Account handlers

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Mail     string `json:"mail"`
	Address  string `json:"address"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Username == "" || req.Password == "" || req.Mail == "" {
		respondMessage(w, http.StatusBadRequest, "username, password and mail are required")
		return
	}

	existing, err := s.repo.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		slog.Error("failed to check username", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if existing != nil {
		respondMessage(w, http.StatusBadRequest, "Username already taken")
		return
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Mail,
		Address:      req.Address,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(r.Context(), user); err != nil {
		slog.Error("failed to create user", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondMessage(w, http.StatusOK, "Signup successful")
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := s.repo.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		slog.Error("failed to get user", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	if user == nil || !s.auth.CheckPassword(user.PasswordHash, req.Password) {
		respondMessage(w, http.StatusUnauthorized, "Wrong username or password")
		return
	}

	token, err := s.auth.IssueToken(user.ID)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "user", user.Username)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user":    map[string]string{"name": user.Username},
	})
}

type otpRequest struct {
	Mail string `json:"mail"`
	OTP  string `json:"otp"`
}

func (s *Server) handleSendOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := s.repo.GetUserByEmail(r.Context(), req.Mail)
	if err != nil {
		slog.Error("failed to get user by email", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil {
		respondMessage(w, http.StatusNotFound, "Email not found")
		return
	}

	code, err := auth.GenerateOTP()
	if err != nil {
		slog.Error("failed to generate otp", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := s.otp.Set(r.Context(), req.Mail, code); err != nil {
		slog.Error("failed to store otp", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	body := fmt.Sprintf("Your OTP is: %s", code)
	if err := s.mailer.Send(r.Context(), req.Mail, "Your OTP for password reset", body); err != nil {
		slog.Error("failed to send otp email", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	respondMessage(w, http.StatusOK, "OTP sent successfully")
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ok, err := s.otp.Verify(r.Context(), req.Mail, req.OTP)
	if err != nil {
		slog.Error("failed to verify otp", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid OTP")
		return
	}

	respondMessage(w, http.StatusOK, "OTP verified")
}

type resetPasswordRequest struct {
	Mail        string `json:"mail"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := s.repo.GetUserByEmail(r.Context(), req.Mail)
	if err != nil {
		slog.Error("failed to get user by email", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil {
		respondMessage(w, http.StatusNotFound, "User not found")
		return
	}

	// The reset itself re-checks the OTP so a stolen verify response is
	// not enough to take over the account.
	ok, err := s.otp.Verify(r.Context(), req.Mail, req.OTP)
	if err != nil {
		slog.Error("failed to verify otp", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid OTP")
		return
	}

	hash, err := s.auth.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := s.repo.UpdateUserPassword(r.Context(), user.ID, hash); err != nil {
		slog.Error("failed to update password", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	if err := s.otp.Clear(r.Context(), req.Mail); err != nil {
		slog.Warn("failed to clear otp after reset", "error", err)
	}

	respondMessage(w, http.StatusOK, "Password reset successful")
}
