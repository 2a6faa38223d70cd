package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/wdcheck/internal/dto"
)

var statusByCode = map[string]int{
	dto.CodeOK:         http.StatusOK,
	dto.CodeBadRequest: http.StatusBadRequest,
	dto.CodeDenied:     http.StatusUnauthorized,
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(response); err != nil {
		zap.L().Error("can't write response", zap.Error(err))
	}
}

// Respond writes the service envelope. The HTTP status follows the response code.
func Respond(w http.ResponseWriter, code, message string) {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	RespondWithJSON(w, status, dto.Response{ResponseCode: code, ResponseMessage: message})
}
