// Package e2e holds the create-withdrawal contract checks shared by the live run and the stub run.
package e2e

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/wdcheck/internal/api"
	"github.com/GlebRadaev/wdcheck/internal/dto"
)

const InvalidAccessKey = "invalid-999-access-333-key"

// Scenario is one request against the create endpoint and the response it must produce.
// An empty Message means any non-empty message is accepted.
type Scenario struct {
	Name    string
	Payload any
	Options api.Options
	Code    string
	Message string
}

func Scenarios() []Scenario {
	userID := uuid.NewString()

	return []Scenario{
		{
			Name:    "valid withdrawal",
			Payload: dto.WithdrawalRequest{UserID: userID, Amount: 50},
			Code:    dto.CodeOK,
			Message: dto.MsgCreated,
		},
		{
			Name:    "invalid user id",
			Payload: dto.WithdrawalRequest{UserID: "invalid-user-id", Amount: 50},
			Code:    dto.CodeBadRequest,
			Message: dto.MsgInvalidUserID,
		},
		{
			Name:    "negative amount",
			Payload: dto.WithdrawalRequest{UserID: userID, Amount: -50},
			Code:    dto.CodeBadRequest,
			Message: dto.MsgAmountNotPositive,
		},
		{
			Name:    "decimal amount",
			Payload: dto.WithdrawalRequest{UserID: userID, Amount: 50.5},
			Code:    dto.CodeBadRequest,
			Message: dto.MsgInvalidDataType,
		},
		{
			Name:    "string amount",
			Payload: dto.WithdrawalRequest{UserID: userID, Amount: "abc"},
			Code:    dto.CodeBadRequest,
			Message: dto.MsgInvalidDataType,
		},
		{
			Name:    "excessive amount",
			Payload: dto.WithdrawalRequest{UserID: userID, Amount: 1e20},
			Code:    dto.CodeBadRequest,
			Message: dto.MsgAmountTooHigh,
		},
		{
			Name:    "invalid access key",
			Payload: dto.WithdrawalRequest{UserID: userID, Amount: 50},
			Options: api.Options{Headers: map[string]string{api.HeaderAccessKey: InvalidAccessKey}},
			Code:    dto.CodeDenied,
			Message: dto.MsgInvalidAccessKey,
		},
		{
			Name:    "missing access key",
			Payload: dto.WithdrawalRequest{UserID: userID, Amount: 50},
			Options: api.Options{OmitHeaders: []string{api.HeaderAccessKey}},
			Code:    dto.CodeDenied,
			Message: dto.MsgMissingAccessKey,
		},
		{
			Name:    "empty body",
			Payload: map[string]any{},
			Code:    dto.CodeBadRequest,
			Message: dto.MsgMissingData,
		},
		{
			Name:    "unexpected field",
			Payload: map[string]any{"user_id": userID, "amount": 50, "ad": true},
			Code:    dto.CodeBadRequest,
		},
		{
			Name:    "invalid request body",
			Payload: "none",
			Code:    dto.CodeBadRequest,
			Message: dto.MsgInvalidRequestBody,
		},
	}
}

// Run executes every scenario as a subtest against client.
func Run(t *testing.T, client *api.Client) {
	t.Helper()

	for _, sc := range Scenarios() {
		t.Run(sc.Name, func(t *testing.T) {
			resp, err := client.CreateWithdrawal(context.Background(), sc.Payload, sc.Options)
			require.NoError(t, err)

			assert.Equal(t, sc.Code, resp.ResponseCode)
			if sc.Message == "" {
				assert.NotEmpty(t, resp.ResponseMessage)
				return
			}
			assert.Equal(t, sc.Message, resp.ResponseMessage)
		})
	}
}
