package constant

const (
	RequestParamDate = "date"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	FormFieldName          = "name"
	FormFieldPhone         = "phone"
	FormFieldEmail         = "email"
	FormFieldArea          = "area"
	FormFieldDate          = "date"
	FormFieldTimeSlot      = "timeSlot"
	FormFieldAdults        = "adults"
	FormFieldChildren      = "children"
	FormFieldComments      = "comments"
	FormFieldTransactionID = "transactionId"
	FormFieldUPIName       = "upiName"
	FormFieldScreenshot    = "screenshot"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelRangeAttributeKey = "range"
	OtelS3ScopeName       = "s3"
	OtelMailScopeName     = "mail"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAdminKey           = "X-Admin-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "Something went wrong. Please try again later."
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	ScreenshotDirectory = "payment-screenshots"
)

const (
	Empty = ""
)
