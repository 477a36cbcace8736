package api

import "github.com/openrelief/relief-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid email or password",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrProfileTaken.Error(),
		1101: store.ErrProfileNotFound.Error(),

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrRequestNotOpen.Error(),
		1202: "response recorded but the request status update failed",
		1203: "a captured location is required",

		1300: "map token is not configured",
		1301: "cannot resolve an address for the location",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorRequestNotFound     = errorJSON(1200)
	errorRequestNotOpen      = errorJSON(1201)
	errorRespondStatusUpdate = errorJSON(1202)
	errorLocationRequired    = errorJSON(1203)

	errorMapTokenNotConfigured = errorJSON(1300)
	errorCannotResolveAddress  = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
