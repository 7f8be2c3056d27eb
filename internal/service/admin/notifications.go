package admin

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a transient message for the admin user.
type Notification struct {
	Level   Level  `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
}

var (
	notifyLoadFailed = Notification{
		Level:   LevelError,
		Title:   "Error loading pathway nodes",
		Message: "Please try refreshing the page.",
	}
	notifySaveFailed = Notification{
		Level:   LevelError,
		Title:   "Error saving changes",
		Message: "Please try again.",
	}
	notifySaved = Notification{
		Level: LevelSuccess,
		Title: "Changes saved",
	}
)
