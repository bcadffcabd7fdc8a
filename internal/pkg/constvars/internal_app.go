package constvars

const (
	AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"

	// ChatBotName signs server-generated welcome and join notices.
	ChatBotName = "CareXpert Bot"
)
