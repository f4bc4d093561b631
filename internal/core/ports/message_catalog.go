package ports

// MessageCatalog renders localized user-facing text for a message code. Unknown codes
// render as the code itself.
type MessageCatalog interface {
	Message(lang, code string, args ...any) string
}
