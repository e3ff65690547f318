package parser

import "github.com/team99/golox/internal/token"

// Error is a single syntax error, reported with the offending token so the
// host reporter can format "at end" or "at 'LEXEME'".
type Error struct {
	Token   token.Token
	Message string
}

func (e Error) Error() string {
	return e.Message
}
