package output

// Translator renders user-facing messages for a Discord locale.
type Translator interface {
	// T renders the message identified by key for the given locale, falling
	// back to the default locale. data fills template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}

// Message keys shipped in the embedded locale files.
const (
	MsgAnnounceBody           = "announce_body"
	MsgAnnounceButton         = "announce_button"
	MsgLeaveModalTitle        = "leave_modal_title"
	MsgLeaveReasonLabel       = "leave_reason_label"
	MsgLeaveReasonPlaceholder = "leave_reason_placeholder"
	MsgLeaveRecorded          = "leave_recorded"
	MsgErrorGeneric           = "error_generic"
)
