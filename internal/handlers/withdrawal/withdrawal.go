package withdrawal

import (
	"bytes"
	"encoding/json"
	"io"
	"math/big"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wdcheck/internal/dto"
	"github.com/GlebRadaev/wdcheck/pkg/utils"
	"github.com/GlebRadaev/wdcheck/pkg/validate"
)

const (
	fieldUserID = "user_id"
	fieldAmount = "amount"
)

// WithdrawalHandler mimics the observed create-withdrawal contract so the harness can be tested
// without the remote service.
type WithdrawalHandler struct {
	limit       decimal.Decimal
	maxExponent int32
}

func New(amountLimit int64) *WithdrawalHandler {
	limit := decimal.NewFromInt(amountLimit)
	return &WithdrawalHandler{
		limit:       limit,
		maxExponent: int32(len(limit.Abs().String())),
	}
}

// Create answers POST /qa-test/createwd with the response envelope the remote service would send.
func (h *WithdrawalHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.Respond(w, dto.CodeBadRequest, dto.MsgInvalidRequestBody)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		zap.L().Debug("request body is not a JSON object", zap.Error(err))
		utils.Respond(w, dto.CodeBadRequest, dto.MsgInvalidRequestBody)
		return
	}

	code, message := h.validate(fields)
	utils.Respond(w, code, message)
}

func (h *WithdrawalHandler) validate(fields map[string]json.RawMessage) (string, string) {
	rawUserID, hasUserID := fields[fieldUserID]
	rawAmount, hasAmount := fields[fieldAmount]
	if !hasUserID || !hasAmount {
		return dto.CodeBadRequest, dto.MsgMissingData
	}
	if len(fields) > 2 {
		return dto.CodeBadRequest, dto.MsgUnexpectedField
	}

	var userID string
	if err := json.Unmarshal(rawUserID, &userID); err != nil || !validate.IsUUID(userID) {
		return dto.CodeBadRequest, dto.MsgInvalidUserID
	}

	amount, ok := parseInteger(rawAmount, h.maxExponent)
	if !ok {
		return dto.CodeBadRequest, dto.MsgInvalidDataType
	}
	if !amount.IsPositive() {
		return dto.CodeBadRequest, dto.MsgAmountNotPositive
	}
	if amount.GreaterThan(h.limit) {
		return dto.CodeBadRequest, dto.MsgAmountTooHigh
	}

	return dto.CodeOK, dto.MsgCreated
}

// parseInteger accepts a JSON number literal with an integral value. Exponents beyond maxExponent
// are folded before any arithmetic: a larger positive exponent is replaced by sign*10^(maxExponent+1),
// and a negative one longer than the coefficient can never yield an integer.
func parseInteger(raw json.RawMessage, maxExponent int32) (decimal.Decimal, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Decimal{}, false
	}

	coef := d.Coefficient()
	exp := d.Exponent()
	switch {
	case coef.Sign() == 0:
		return decimal.Zero, true
	case exp > maxExponent:
		return decimal.New(int64(coef.Sign()), maxExponent+1), true
	case exp < 0 && int64(-exp) > int64(len(new(big.Int).Abs(coef).String())):
		return decimal.Decimal{}, false
	}

	if !d.IsInteger() {
		return decimal.Decimal{}, false
	}
	return d, true
}
