package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/common"
)

type requestSignupRequest struct {
	Email string `json:"email" validate:"required"`
}

type verifySignupRequest struct {
	Email    string `json:"email" validate:"required"`
	Otp      string `json:"otp" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type verifySignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type userResponse struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *HTTPServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) requestSignupHandler(w http.ResponseWriter, r *http.Request) {
	var req requestSignupRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := s.provisioning.RequestSignup(r.Context(), req.Email); err != nil {
		s.writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "OTP sent successfully"})
}

func (s *HTTPServer) verifySignupHandler(w http.ResponseWriter, r *http.Request) {
	var req verifySignupRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := s.provisioning.VerifySignup(r.Context(), req.Email, req.Otp, req.Password); err != nil {
		s.writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, verifySignupResponse{Success: true, Message: "Signup complete"})
}

func (s *HTTPServer) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decode(w, r, &req) {
		return
	}

	account, err := s.provisioning.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		User: userResponse{
			Email:     account.Email,
			Role:      string(account.Role),
			CreatedAt: account.CreatedAt,
		},
	})
}

// decode reads a JSON body into dst and validates it. On failure it writes
// a 400 MissingFields response and returns false.
func (s *HTTPServer) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeErr(w, r, common.ErrMissingFields)
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.writeErr(w, r, common.ErrMissingFields)
		return false
	}
	return true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrMissingFields),
		errors.Is(err, common.ErrInvalidDomain),
		errors.Is(err, common.ErrInvalidPassword):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrAccountExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrInvalidOTP),
		errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrDeliveryFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *HTTPServer) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, code, errorResponse{Error: common.ErrorKind(err), Message: common.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
