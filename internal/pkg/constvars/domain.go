package constvars

// User roles.
const (
	RolePatient = "PATIENT"
	RoleDoctor  = "DOCTOR"
	RoleAdmin   = "ADMIN"
)

// Time slot statuses.
const (
	SlotStatusAvailable = "AVAILABLE"
	SlotStatusBooked    = "BOOKED"
)

// Appointment statuses.
const (
	AppointmentStatusPending   = "PENDING"
	AppointmentStatusConfirmed = "CONFIRMED"
	AppointmentStatusCompleted = "COMPLETED"
	AppointmentStatusCancelled = "CANCELLED"
	AppointmentStatusRejected  = "REJECTED"
)

// Appointment types.
const (
	AppointmentTypeOnline  = "ONLINE"
	AppointmentTypeOffline = "OFFLINE"
)

// Notification types.
const (
	NotificationAppointmentRequest   = "APPOINTMENT_REQUEST"
	NotificationAppointmentAccepted  = "APPOINTMENT_ACCEPTED"
	NotificationAppointmentRejected  = "APPOINTMENT_REJECTED"
	NotificationAppointmentCancelled = "APPOINTMENT_CANCELLED"
	NotificationPrescriptionAdded    = "PRESCRIPTION_ADDED"
)

// Report statuses.
const (
	ReportStatusProcessing = "PROCESSING"
	ReportStatusCompleted  = "COMPLETED"
	ReportStatusFailed     = "FAILED"
)

// Triage severities.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// MaxSlotDuration caps a single bookable time slot.
const MaxSlotDurationHours = 3

// MongoDB collection names.
const (
	MongoCollectionUsers         = "users"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionPatients      = "patients"
	MongoCollectionTimeSlots     = "time_slots"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionPrescriptions = "prescriptions"
	MongoCollectionNotifications = "notifications"
	MongoCollectionChatMessages  = "chat_messages"
	MongoCollectionRooms         = "rooms"
	MongoCollectionConversations = "conversations"
	MongoCollectionAiChats       = "ai_chats"
	MongoCollectionReports       = "reports"
)
