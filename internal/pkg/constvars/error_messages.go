package constvars

// Client-facing error messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientEmailAlreadyExists            = "Email is already registered"
	ErrClientUsernameAlreadyExists         = "Username is already taken"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"
	ErrClientTooManyRequests               = "Too many requests, please slow down"

	ErrClientUserNotFound         = "User not found"
	ErrClientDoctorNotFound       = "Doctor not found"
	ErrClientPatientNotFound      = "Patient not found"
	ErrClientSlotNotFound         = "Time slot not found"
	ErrClientAppointmentNotFound  = "Appointment not found"
	ErrClientNotificationNotFound = "Notification not found"
	ErrClientReportNotFound       = "Report not found"
	ErrClientChatNotFound         = "Chat not found"
	ErrClientRoomNotFound         = "Room not found"

	ErrClientSlotEndBeforeStart    = "Slot end time must be after start time"
	ErrClientSlotTooLong           = "Slot duration cannot exceed 3 hours"
	ErrClientSlotOverlaps          = "Slot overlaps with an existing time slot"
	ErrClientSlotNotAvailable      = "Time slot is no longer available"
	ErrClientSlotHasAppointment    = "Time slot has an appointment attached and cannot be deleted"
	ErrClientPatientDoubleBooked   = "You already have an appointment in this time range"
	ErrClientDoctorTimeConflict    = "Doctor already has an appointment at this date and time"
	ErrClientAppointmentNotPending = "Appointment request has already been responded to"
	ErrClientAppointmentFinalState = "Appointment can no longer be modified"

	ErrClientDoctorOnly  = "Only doctors can perform this action"
	ErrClientPatientOnly = "Only patients can perform this action"

	ErrClientSymptomsRequired    = "Symptoms description is required"
	ErrClientFileRequired        = "No file uploaded"
	ErrClientFileTooLarge        = "File exceeds the maximum allowed size"
	ErrClientFileTypeUnsupported = "File type is not supported"
	ErrClientAIUnavailable       = "Analysis service is temporarily unavailable, please try again later"
)

// Developer messages attached to CustomError and logged, never returned in production.
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "failed to parse JSON request body"
	ErrDevCannotParseMultipartForm  = "failed to parse multipart form"
	ErrDevCannotParseTime           = "failed to parse time value"
	ErrDevCannotMarshalJSON         = "failed to marshal value to JSON"
	ErrDevServerDeadlineExceeded    = "context deadline exceeded"
	ErrDevInvalidCredentials        = "credentials do not match any user"
	ErrDevEmailAlreadyExists        = "email already exists in users collection"
	ErrDevUsernameAlreadyExists     = "username already exists in users collection"
	ErrDevFailedToHashPassword      = "failed to hash password with bcrypt"
	ErrDevAuthTokenMissing          = "authorization header missing"
	ErrDevAuthTokenInvalid          = "failed to parse or verify JWT"
	ErrDevAuthTokenInvalidOrExpired = "JWT invalid or expired"
	ErrDevAuthGenerateToken         = "failed to sign JWT"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevSessionNotFound           = "session not found in redis"
	ErrDevRoleTypeDoesntMatch       = "session role does not permit this operation"

	ErrDevDBFailedToFindDocument     = "mongodb: failed to find document"
	ErrDevDBFailedToInsertDocument   = "mongodb: failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongodb: failed to update document"
	ErrDevDBFailedToDeleteDocument   = "mongodb: failed to delete document"
	ErrDevDBFailedToCountDocuments   = "mongodb: failed to count documents"
	ErrDevDBFailedToIterateDocuments = "mongodb: failed to iterate cursor"
	ErrDevDBStringNotObjectID        = "mongodb: string is not a valid ObjectID"

	ErrDevRedisSet           = "redis: failed to set key"
	ErrDevRedisGet           = "redis: failed to get key"
	ErrDevRedisDelete        = "redis: failed to delete key"
	ErrDevRedisIncrement     = "redis: failed to increment key"
	ErrDevRedisUnlock        = "redis: failed to release lock"
	ErrDevRabbitMQPublish    = "rabbitmq: failed to publish message to queue %s"
	ErrDevMinioCreateObject  = "minio: failed to put object into bucket %s"
	ErrDevMinioGetObject     = "minio: failed to get object from bucket %s"
	ErrDevAIRequestFailed    = "ai: generative api request failed"
	ErrDevAIResponseInvalid  = "ai: generative api returned unparseable payload"
	ErrDevAIRateLimited      = "ai: analysis rate limit reached"
	ErrDevSlotCASLost        = "slot conditional update matched no document"
	ErrDevAppointmentState   = "appointment is not in a state that allows this transition"
	ErrDevReportUploadFailed = "report upload pipeline failed"
)
