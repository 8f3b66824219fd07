package theory

import "strings"

// ListSeparator separates tokens in every list notation.
const ListSeparator = ","

// ParseList applies parse to each comma-separated token of text, trimming spaces. It is
// all-or-nothing: the first empty or invalid token fails the call with a *ParseError
// carrying the token, its item position and its byte offset.
func ParseList[T any](text, grammar string, parse func(string) (T, error)) ([]T, error) {
	listGrammar := grammar + " list"
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Grammar: listGrammar, Input: text, Item: 0, Reason: "empty list"}
	}

	parts := strings.Split(text, ListSeparator)
	out := make([]T, 0, len(parts))
	offset := 0
	for i, raw := range parts {
		tok := strings.TrimSpace(raw)
		tokOffset := offset + strings.Index(raw, tok)
		offset += len(raw) + len(ListSeparator)

		if tok == "" {
			return nil, &ParseError{
				Grammar: listGrammar,
				Input:   text,
				Token:   tok,
				Offset:  tokOffset,
				Item:    i,
				Reason:  "empty token",
			}
		}
		v, err := parse(tok)
		if err != nil {
			return nil, &ParseError{
				Grammar: listGrammar,
				Input:   text,
				Token:   tok,
				Offset:  tokOffset,
				Item:    i,
				Reason:  "invalid " + grammar,
				Err:     err,
			}
		}
		out = append(out, v)
	}
	return out, nil
}
