package tui

import "strings"

// ParseMention resolves an explicit @-address at the start of a message.
// It returns the addressed persona id (or "team" for @team), and the
// message with the mention stripped. A mention that matches no known
// persona is left in place and the message routes normally.
func ParseMention(text string, known []string) (string, string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "@") {
		return "", text
	}

	mention, rest, _ := strings.Cut(text[1:], " ")
	mention = strings.ToLower(mention)
	rest = strings.TrimSpace(rest)

	if mention == "team" {
		return "team", rest
	}
	for _, id := range known {
		if mention == id {
			return id, rest
		}
	}
	return "", text
}
