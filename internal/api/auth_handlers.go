package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/starhealth/internal/service"
	"github.com/limbo/starhealth/pkg/entity"
	"github.com/limbo/starhealth/pkg/httputil"
)

type SendCodeRequest struct {
	Email string `json:"email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// UpdateProfileRequest fields left out of the body stay unchanged
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Dob     *string `json:"dob"`
	Disease *string `json:"disease"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

type AuthResponse struct {
	Token string             `json:"token"`
	User  entity.UserProfile `json:"user"`
}

func (s *Server) SendCode(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SendCodeRequest
	if err := decodeBody(r.Body, &req); err != nil {
		logger.Warn("send code error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	if err := s.userService.SendVerificationCode(ctx, req.Email); err != nil {
		writeServiceError(w, logger, "send code", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "verification code sent", nil)
	logger.Info("verification code sent")
}

func (s *Server) VerifyCode(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req VerifyCodeRequest
	if err := decodeBody(r.Body, &req); err != nil {
		logger.Warn("verify code error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.userService.VerifyCode(ctx, &service.VerifyCodeRequest{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		writeServiceError(w, logger, "verify code", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "email verified", nil)
	logger.Info("email verified")
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := decodeBody(r.Body, &req); err != nil {
		logger.Warn("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	s.writeAuthResponse(w, logger, http.StatusCreated, "user registered", user)
	logger.Info("successful registration", slog.String("uid", user.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := decodeBody(r.Body, &req); err != nil {
		logger.Warn("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	s.writeAuthResponse(w, logger, http.StatusOK, "logged in", user)
	logger.Info("successful login", slog.String("uid", user.ID.String()))
}

func (s *Server) SendResetCode(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SendCodeRequest
	if err := decodeBody(r.Body, &req); err != nil {
		logger.Warn("send reset code error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	if err := s.userService.SendResetCode(ctx, req.Email); err != nil {
		writeServiceError(w, logger, "send reset code", err)
		return
	}
	// Same answer whether the account exists or not
	httputil.WriteJSONResponse(w, http.StatusOK, "if the account exists, a reset code was sent", nil)
}

func (s *Server) ResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ResetPasswordRequest
	if err := decodeBody(r.Body, &req); err != nil {
		logger.Warn("reset password error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.userService.ResetPassword(ctx, &service.ResetPasswordRequest{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		writeServiceError(w, logger, "reset password", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "password updated", nil)
	logger.Info("password reset")
}

func (s *Server) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req GoogleLoginRequest
	if err := decodeBody(r.Body, &req); err != nil {
		logger.Warn("google login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	user, err := s.userService.LoginWithGoogle(ctx, req.IDToken)
	if err != nil {
		writeServiceError(w, logger, "google login", err)
		return
	}
	s.writeAuthResponse(w, logger, http.StatusOK, "logged in", user)
	logger.Info("successful google login", slog.String("uid", user.ID.String()))
}

func (s *Server) Profile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "profile")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", user.Profile())
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "updating profile")
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := decodeBody(r.Body, &req); err != nil {
		logger.Warn("updating profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{
		Name:    req.Name,
		Dob:     req.Dob,
		Disease: req.Disease,
	})
	if err != nil {
		writeServiceError(w, logger, "updating profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "profile updated", user.Profile())
	logger.Info("profile updated")
}

func (s *Server) writeAuthResponse(w http.ResponseWriter, logger *slog.Logger, status int, message string, user *entity.User) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token")
		return
	}
	httputil.WriteJSONResponse(w, status, message, AuthResponse{
		Token: token,
		User:  user.Profile(),
	})
}
