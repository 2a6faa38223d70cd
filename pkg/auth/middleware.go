package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/GlebRadaev/wdcheck/internal/dto"
	"github.com/GlebRadaev/wdcheck/pkg/utils"
)

const AccessKeyHeader = "access-key"

func AccessKeyMiddleware(accessKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AccessKeyHeader)
			if key == "" {
				utils.Respond(w, dto.CodeDenied, dto.MsgMissingAccessKey)
				return
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(accessKey)) != 1 {
				utils.Respond(w, dto.CodeDenied, dto.MsgInvalidAccessKey)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
