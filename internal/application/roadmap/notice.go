package roadmap

// Notice is a short user-facing message emitted after a store operation
type Notice struct {
	Title       string
	Description string
	Destructive bool
}

// Notifier receives notices. Implementations must not call back into the store.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}

var (
	noticeAdded = Notice{
		Title:       "Milestone added",
		Description: "Your roadmap milestone has been added successfully.",
	}
	noticeRemoved = Notice{
		Title:       "Milestone removed",
		Description: "Your roadmap milestone has been removed.",
		Destructive: true,
	}
	noticeSaved = Notice{
		Title:       "Roadmap saved!",
		Description: "Your roadmap has been saved successfully.",
	}
)

func cannotSave(description string) Notice {
	return Notice{
		Title:       "Cannot save roadmap",
		Description: description,
		Destructive: true,
	}
}
