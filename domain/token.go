package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type TokenKind int

const (
	TokenHandle TokenKind = iota
	TokenMention
	TokenID
)

func (k TokenKind) String() string {
	switch k {
	case TokenMention:
		return "mention"
	case TokenID:
		return "id"
	default:
		return "handle"
	}
}

// MaxSearchQueryLength is the longest query the member search accepts.
const MaxSearchQueryLength = 32

var (
	mentionPattern     = regexp.MustCompile(`<@!?(\d+)>`)
	fullMentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)
	snowflakePattern   = regexp.MustCompile(`^\d{17,21}$`)
	listSeparators     = regexp.MustCompile(`[,;\n、，]+`)
)

// Token is one member reference typed by the requester.
type Token struct {
	Raw  string
	Kind TokenKind
}

// NewToken trims raw and classifies it. Mention syntax wins over bare digits, anything
// else is a handle.
func NewToken(raw string) Token {
	raw = strings.TrimSpace(raw)
	switch {
	case fullMentionPattern.MatchString(raw):
		return Token{Raw: raw, Kind: TokenMention}
	case snowflakePattern.MatchString(raw):
		return Token{Raw: raw, Kind: TokenID}
	default:
		return Token{Raw: raw, Kind: TokenHandle}
	}
}

// MemberID returns the identifier carried by a mention or id token.
func (t Token) MemberID() (MemberID, bool) {
	switch t.Kind {
	case TokenMention:
		m := fullMentionPattern.FindStringSubmatch(t.Raw)
		if len(m) != 2 {
			return "", false
		}
		return MemberID(m[1]), true
	case TokenID:
		return MemberID(t.Raw), true
	default:
		return "", false
	}
}

// Name is the handle without the "@" people type out of habit. A modal text input never
// turns "@alice" into a mention, so the prefix reaches us as plain text.
func (t Token) Name() string {
	return strings.TrimSpace(strings.TrimPrefix(t.Raw, "@"))
}

// SearchQuery is the handle name cut down to what the member search accepts.
func (t Token) SearchQuery() string {
	name := t.Name()
	if utf8.RuneCountInString(name) <= MaxSearchQueryLength {
		return name
	}
	return string([]rune(name)[:MaxSearchQueryLength])
}

// ParseTokens splits the free-text member field in typing order. Mentions are pulled
// out wherever they appear, even glued together. The text around them is split on list
// separators (commas, semicolons, new lines) when the input has any, so display names
// keep their spaces; otherwise on whitespace.
func ParseTokens(input string) []Token {
	listMode := listSeparators.MatchString(mentionPattern.ReplaceAllString(input, " "))
	split := func(chunk string) []Token {
		var parts []string
		if listMode {
			parts = listSeparators.Split(chunk, -1)
		} else {
			parts = strings.Fields(chunk)
		}
		var tokens []Token
		for _, part := range parts {
			if strings.TrimSpace(part) == "" {
				continue
			}
			tokens = append(tokens, NewToken(part))
		}
		return tokens
	}

	var tokens []Token
	last := 0
	for _, loc := range mentionPattern.FindAllStringIndex(input, -1) {
		tokens = append(tokens, split(input[last:loc[0]])...)
		tokens = append(tokens, NewToken(input[loc[0]:loc[1]]))
		last = loc[1]
	}
	return append(tokens, split(input[last:])...)
}
