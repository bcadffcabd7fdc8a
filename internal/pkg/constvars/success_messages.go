package constvars

const (
	SignupSuccessMessage  = "Successfully registered"
	LoginSuccessMessage   = "Successfully logged in"
	LogoutSuccessMessage  = "Successfully logged out"
	GetProfileSuccess     = "Successfully fetched profile"
	UpdateProfileSuccess  = "Successfully updated profile"
	GetDoctorsSuccess     = "Successfully fetched doctors"
	GetDoctorSuccess      = "Successfully fetched doctor"

	CreateSlotSuccess = "Successfully created time slot"
	GetSlotsSuccess   = "Successfully fetched time slots"
	UpdateSlotSuccess = "Successfully updated time slot"
	DeleteSlotSuccess = "Successfully deleted time slot"

	BookAppointmentSuccess     = "Appointment request submitted"
	GetAppointmentsSuccess     = "Successfully fetched appointments"
	RespondAppointmentSuccess  = "Successfully responded to appointment request"
	CancelAppointmentSuccess   = "Successfully cancelled appointment"
	CompleteAppointmentSuccess = "Successfully completed appointment"
	AddPrescriptionSuccess     = "Successfully added prescription"
	GetPrescriptionsSuccess    = "Successfully fetched prescriptions"

	GetNotificationsSuccess    = "Successfully fetched notifications"
	MarkNotificationSuccess    = "Notification marked as read"
	MarkAllNotificationSuccess = "All notifications marked as read"

	GetRoomMessagesSuccess = "Room messages fetched successfully"
	GetDmMessagesSuccess   = "DM messages fetched successfully"
	GetRoomsSuccess        = "Successfully fetched rooms"
	CreateRoomSuccess      = "Successfully created room"

	SymptomAnalysisSuccess = "Successfully analyzed symptoms"
	GetAiChatsSuccess      = "Successfully fetched chat history"
	GetAiChatSuccess       = "Successfully fetched chat"

	ReportAcceptedMessage = "Report is being processed"
	GetReportSuccess      = "Successfully fetched report"
)
