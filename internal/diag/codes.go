package diag

import (
	"fmt"
)

// Code identifies a diagnostic. Lexical codes live in the 1000 block; the
// 2000 block is reserved for the external parser that consumes our tokens.
type Code uint16

const (
	// UnknownCode — неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexTabError           Code = 1004
	LexBadDedent          Code = 1005
	LexUnexpectedEOF      Code = 1006
	LexTokenTooLong       Code = 1007

	// Парсерные (зарезервировано)
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001

	// Ввод-вывод
	IOLoadFileError Code = 3001
)

var codeIDs = map[Code]string{
	UnknownCode: "UNKNOWN",

	LexInfo:               "LEX0000",
	LexUnknownChar:        "LEX0001",
	LexUnterminatedString: "LEX0002",
	LexBadNumber:          "LEX0003",
	LexTabError:           "LEX0004",
	LexBadDedent:          "LEX0005",
	LexUnexpectedEOF:      "LEX0006",
	LexTokenTooLong:       "LEX0007",

	SynInfo:            "SYN0000",
	SynUnexpectedToken: "SYN0001",

	IOLoadFileError: "IO0001",
}

// ID returns the stable printable identifier of the code.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("CODE%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}
