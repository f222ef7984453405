package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/humidor-club/constant"
	utilsContext "github.com/muhammadheryan/humidor-club/utils/context"
	"github.com/muhammadheryan/humidor-club/utils/errors"
	"github.com/muhammadheryan/humidor-club/utils/logger"
	validatorx "github.com/muhammadheryan/humidor-club/utils/validator"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusOK, body)
}

func writeCreated(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusCreated, body)
}

// writeError renders a CustomError with its mapped status. Anything else is
// logged and reported as an internal error.
func writeError(w http.ResponseWriter, err error) {
	ce, ok := err.(errors.CustomError)
	if !ok {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{Code: ce.ErrorCode(), Message: ce.Error()})
}

// decodeBody reads a JSON body into dst and runs struct validation on it.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "malformed JSON body")
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Describe(err))
	}
	return nil
}

func pathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid "+name)
	}
	return id, nil
}

// queryInt returns def when the parameter is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, name+" must be a number")
	}
	return v, nil
}

func queryUint(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, name+" must be a positive number")
	}
	return v, nil
}

func currentUser(r *http.Request) (uint64, error) {
	id, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		return 0, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return id, nil
}
