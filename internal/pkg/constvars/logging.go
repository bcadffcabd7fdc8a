package constvars

// Context keys. Typed as string on purpose so middleware and services share them.
const (
	CONTEXT_SESSION_DATA_KEY = "sessionData"
	CONTEXT_REQUEST_ID_KEY   = "requestID"
)

// Common zap field keys.
const (
	LoggingRequestIDKey          = "request_id"
	LoggingUserIDKey             = "user_id"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingSlotIDKey             = "slot_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingReportIDKey           = "report_id"
	LoggingRoomKey               = "room"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
