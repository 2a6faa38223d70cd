package dto

// WithdrawalRequest is the create-withdrawal payload. Amount is left untyped so callers can send
// the exact JSON value under test.
type WithdrawalRequest struct {
	UserID string `json:"user_id" example:"6a9cf2ba-b394-4c1a-8a38-2edff793f1af"`
	Amount any    `json:"amount" example:"50"`
}

type Response struct {
	ResponseCode    string `json:"response_code" example:"OK"`
	ResponseMessage string `json:"response_message" example:"WD created"`
}

const (
	CodeOK         = "OK"
	CodeBadRequest = "BAD_REQUEST"
	CodeDenied     = "DENIED"
)

const (
	MsgCreated            = "WD created"
	MsgInvalidUserID      = "user_id is not valid"
	MsgAmountNotPositive  = "Amount must be positive"
	MsgInvalidDataType    = "Invalid data type in request data"
	MsgAmountTooHigh      = "Amount is too high"
	MsgInvalidAccessKey   = "Unauthorized access: Invalid access key provided."
	MsgMissingAccessKey   = "Access key is missing."
	MsgMissingData        = "Missing data in the request body"
	MsgUnexpectedField    = "Unexpected field in request data"
	MsgInvalidRequestBody = "Invalid request body"
)
