package domain

// Resolution is the outcome of resolving every token of one request.
// Added keeps first-seen order without duplicates and never holds the requester.
type Resolution struct {
	Added   []MemberID
	Invalid []string
}
