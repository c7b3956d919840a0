package domain

// EditSession captures an edit in progress.
// It is created by BeginEdit and consumed by exactly one CommitEdit or CancelEdit.
type EditSession struct {
	TaskID      string // Task being edited
	InitialText string // Text shown when the edit surface opened
	Index       int    // Row position at the time the edit began (display only)
}

// Changed reports whether text differs from the text the session started with
// once both are normalized.
func (s EditSession) Changed(text string) bool {
	return NormalizeText(text) != NormalizeText(s.InitialText)
}
