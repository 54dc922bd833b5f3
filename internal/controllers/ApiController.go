package controllers

import (
	"dsatrack/internal/providers"
	"dsatrack/internal/services"
	"errors"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// UserIDHeader carries the caller identity; authentication happens upstream.
const UserIDHeader = "X-User-ID"

var (
	errMissingIdentity = errors.New("missing " + UserIDHeader + " header")
	errBadRequest      = errors.New("bad request")
)

type errorResponse struct {
	Error string `json:"error"`
}

// ApiController holds the response helpers shared by every handler.
type ApiController struct {
	logger providers.Logger
}

func userID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if id == "" {
		return "", errMissingIdentity
	}
	return id, nil
}

// decode reads a JSON body of at most maxRequestBodySize. An empty body is
// accepted when allowEmpty is set and leaves dst untouched.
func (ac *ApiController) decode(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}
	if allowEmpty && errors.Is(err, io.EOF) {
		return nil
	}
	return errBadRequest
}

func (ac *ApiController) writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		ac.logger.Errorf(providers.TypeApp, "Unable to encode response: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (ac *ApiController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s failed: %s", r.Method, r.URL.Path, err)
		message = "internal server error"
	}
	ac.writeJSON(w, status, errorResponse{Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errMissingIdentity):
		return http.StatusUnauthorized
	case errors.Is(err, errBadRequest), errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProblemNotFound),
		errors.Is(err, services.ErrListNotFound),
		errors.Is(err, services.ErrListProblemNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
