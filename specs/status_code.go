package specs

import "strconv"

// StatusCode is the numeric code of a status line. Parsing accepts any 32-bit
// decimal value; IsValid reports whether it lies in the registered 1xx-5xx range.
type StatusCode uint32

const (
	StatusCodeUndefined StatusCode = 0

	StatusCodeContinue           StatusCode = 100
	StatusCodeSwitchingProtocols StatusCode = 101
	StatusCodeProcessing         StatusCode = 102
	StatusCodeEarlyHints         StatusCode = 103

	StatusCodeOK                   StatusCode = 200
	StatusCodeCreated              StatusCode = 201
	StatusCodeAccepted             StatusCode = 202
	StatusCodeNonAuthoritativeInfo StatusCode = 203
	StatusCodeNoContent            StatusCode = 204
	StatusCodeResetContent         StatusCode = 205
	StatusCodePartialContent       StatusCode = 206
	StatusCodeMultiStatus          StatusCode = 207
	StatusCodeAlreadyReported      StatusCode = 208
	StatusCodeIMUsed               StatusCode = 226

	StatusCodeMultipleChoices   StatusCode = 300
	StatusCodeMovedPermanently  StatusCode = 301
	StatusCodeFound             StatusCode = 302
	StatusCodeSeeOther          StatusCode = 303
	StatusCodeNotModified       StatusCode = 304
	StatusCodeUseProxy          StatusCode = 305
	StatusCodeTemporaryRedirect StatusCode = 307
	StatusCodePermanentRedirect StatusCode = 308

	StatusCodeBadRequest                   StatusCode = 400
	StatusCodeUnauthorized                 StatusCode = 401
	StatusCodePaymentRequired              StatusCode = 402
	StatusCodeForbidden                    StatusCode = 403
	StatusCodeNotFound                     StatusCode = 404
	StatusCodeMethodNotAllowed             StatusCode = 405
	StatusCodeNotAcceptable                StatusCode = 406
	StatusCodeProxyAuthRequired            StatusCode = 407
	StatusCodeRequestTimeout               StatusCode = 408
	StatusCodeConflict                     StatusCode = 409
	StatusCodeGone                         StatusCode = 410
	StatusCodeLengthRequired               StatusCode = 411
	StatusCodePreconditionFailed           StatusCode = 412
	StatusCodeRequestEntityTooLarge        StatusCode = 413
	StatusCodeRequestURITooLong            StatusCode = 414
	StatusCodeUnsupportedMediaType         StatusCode = 415
	StatusCodeRequestedRangeNotSatisfiable StatusCode = 416
	StatusCodeExpectationFailed            StatusCode = 417
	StatusCodeTeapot                       StatusCode = 418
	StatusCodeMisdirectedRequest           StatusCode = 421
	StatusCodeUnprocessableEntity          StatusCode = 422
	StatusCodeLocked                       StatusCode = 423
	StatusCodeFailedDependency             StatusCode = 424
	StatusCodeTooEarly                     StatusCode = 425
	StatusCodeUpgradeRequired              StatusCode = 426
	StatusCodePreconditionRequired         StatusCode = 428
	StatusCodeTooManyRequests              StatusCode = 429
	StatusCodeRequestHeaderFieldsTooLarge  StatusCode = 431
	StatusCodeUnavailableForLegalReasons   StatusCode = 451

	StatusCodeInternalServerError           StatusCode = 500
	StatusCodeNotImplemented                StatusCode = 501
	StatusCodeBadGateway                    StatusCode = 502
	StatusCodeServiceUnavailable            StatusCode = 503
	StatusCodeGatewayTimeout                StatusCode = 504
	StatusCodeHTTPVersionNotSupported       StatusCode = 505
	StatusCodeVariantAlsoNegotiates         StatusCode = 506
	StatusCodeInsufficientStorage           StatusCode = 507
	StatusCodeLoopDetected                  StatusCode = 508
	StatusCodeNotExtended                   StatusCode = 510
	StatusCodeNetworkAuthenticationRequired StatusCode = 511
)

var reasonPhrases = map[StatusCode]string{
	StatusCodeContinue:                      "Continue",
	StatusCodeSwitchingProtocols:            "Switching Protocols",
	StatusCodeProcessing:                    "Processing",
	StatusCodeEarlyHints:                    "Early Hints",
	StatusCodeOK:                            "OK",
	StatusCodeCreated:                       "Created",
	StatusCodeAccepted:                      "Accepted",
	StatusCodeNonAuthoritativeInfo:          "Non-Authoritative Information",
	StatusCodeNoContent:                     "No Content",
	StatusCodeResetContent:                  "Reset Content",
	StatusCodePartialContent:                "Partial Content",
	StatusCodeMultiStatus:                   "Multi-Status",
	StatusCodeAlreadyReported:               "Already Reported",
	StatusCodeIMUsed:                        "I'm Used",
	StatusCodeMultipleChoices:               "Multiple Choices",
	StatusCodeMovedPermanently:              "Moved Permanently",
	StatusCodeFound:                         "Found",
	StatusCodeSeeOther:                      "See Other",
	StatusCodeNotModified:                   "Not Modified",
	StatusCodeUseProxy:                      "Use Proxy",
	StatusCodeTemporaryRedirect:             "Temporary Redirect",
	StatusCodePermanentRedirect:             "Permanent Redirect",
	StatusCodeBadRequest:                    "Bad Request",
	StatusCodeUnauthorized:                  "Unauthorized",
	StatusCodePaymentRequired:               "Payment Required",
	StatusCodeForbidden:                     "Forbidden",
	StatusCodeNotFound:                      "Not Found",
	StatusCodeMethodNotAllowed:              "Method Not Allowed",
	StatusCodeNotAcceptable:                 "Not Acceptable",
	StatusCodeProxyAuthRequired:             "Proxy Auth Required",
	StatusCodeRequestTimeout:                "Request Timeout",
	StatusCodeConflict:                      "Conflict",
	StatusCodeGone:                          "Gone",
	StatusCodeLengthRequired:                "Length Required",
	StatusCodePreconditionFailed:            "Precondition Failed",
	StatusCodeRequestEntityTooLarge:         "Request Entity Too Large",
	StatusCodeRequestURITooLong:             "Request URI Too Long",
	StatusCodeUnsupportedMediaType:          "Unsupported Media Type",
	StatusCodeRequestedRangeNotSatisfiable:  "Requested Range Not Satisfiable",
	StatusCodeExpectationFailed:             "ExpectationFailed",
	StatusCodeTeapot:                        "I'm a teapot",
	StatusCodeMisdirectedRequest:            "Misdirected Request",
	StatusCodeUnprocessableEntity:           "Unprocessable Entity",
	StatusCodeLocked:                        "Locked",
	StatusCodeFailedDependency:              "Failed Dependency",
	StatusCodeTooEarly:                      "Too Early",
	StatusCodeUpgradeRequired:               "Upgrade Required",
	StatusCodePreconditionRequired:          "Precondition Required",
	StatusCodeTooManyRequests:               "Too Many Requests",
	StatusCodeRequestHeaderFieldsTooLarge:   "Request Header Fields Too Large",
	StatusCodeUnavailableForLegalReasons:    "Unavailable For Legal Reasons",
	StatusCodeInternalServerError:           "Internal Server Error",
	StatusCodeNotImplemented:                "Not Implemented",
	StatusCodeBadGateway:                    "Bad Gateway",
	StatusCodeServiceUnavailable:            "Service Unavailable",
	StatusCodeGatewayTimeout:                "Gateway Timeout",
	StatusCodeHTTPVersionNotSupported:       "HTTP Version Not Supported",
	StatusCodeVariantAlsoNegotiates:         "Variant Also Negotiates",
	StatusCodeInsufficientStorage:           "Insufficient Storage",
	StatusCodeLoopDetected:                  "Loop Detected",
	StatusCodeNotExtended:                   "Not Extended",
	StatusCodeNetworkAuthenticationRequired: "Network Authentication Required",
}

// IsValid reports whether the code lies in the 100-599 range.
func (code StatusCode) IsValid() bool {
	return 100 <= code && code < 600
}

// Detail returns the canonical reason phrase or an empty string for unknown codes.
func (code StatusCode) Detail() string {
	return reasonPhrases[code]
}

func (code StatusCode) String() string {
	text := strconv.FormatUint(uint64(code), 10)
	if detail := code.Detail(); detail != "" {
		text += " " + detail
	}
	return text
}
