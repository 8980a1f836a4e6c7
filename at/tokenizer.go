package at

import (
	"strings"
)

// queryToken separates the command name from its value in a
// "+CMD: value" reply.
const queryToken = ": "

// ModeLine returns the text after the last line break of response, or the
// whole response when it has none. This is where the modem puts its final
// status token.
func ModeLine(response string) string {
	return response[strings.LastIndexByte(response, '\n')+1:]
}

// Line returns the characters of the zero-indexed line n of response.
// Lines end at '\n'; '\r' is dropped wherever it appears. Line returns ""
// when response has fewer than n+1 lines.
func Line(response string, n int) string {
	if n < 0 {
		return ""
	}

	var (
		b       strings.Builder
		current int
	)
	for i := 0; i < len(response); i++ {
		c := response[i]
		if c == '\n' {
			if current == n {
				break
			}
			current++
			continue
		}
		if c == '\r' || current != n {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// QueryValue returns the payload of a "+CMD: value" reply: everything after
// the first ": " up to the next line break. It returns "" when the reply
// carries no ": " token.
func QueryValue(response string) string {
	i := strings.Index(response, queryToken)
	if i < 0 {
		return ""
	}
	value := response[i+len(queryToken):]
	if end := strings.IndexAny(value, "\r\n"); end >= 0 {
		value = value[:end]
	}
	return value
}

// Fields splits a query value on commas. Quoted fields are not treated
// specially, so a comma inside quotes splits the field.
func Fields(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

// Unquote trims surrounding whitespace and one pair of double quotes.
func Unquote(field string) string {
	field = strings.TrimSpace(field)
	if len(field) >= 2 && field[0] == '"' && field[len(field)-1] == '"' {
		return field[1 : len(field)-1]
	}
	return field
}

// Classify identifies the nature of a modem output line.
func Classify(line string) ResponseType {
	if line == Prompt || strings.HasPrefix(line, ">") {
		return TypePrompt
	}

	// Direct matches for final results
	switch line {
	case OK, ERROR, NoCarrier, NoDialtone, Busy, NoAnswer, ConnectOK:
		return TypeFinal
	}

	// Prefix matches
	switch {
	case strings.HasPrefix(line, CmeError), strings.HasPrefix(line, CmsError):
		return TypeFinal
	case strings.HasPrefix(line, UrcNewMsg), strings.HasPrefix(line, UrcMessageReport), line == UrcCall:
		return TypeURC
	default:
		return TypeData
	}
}
