package fuzz

import (
	"github.com/gpassos/minilog/parser"
)

func Fuzz(data []byte) int {
	_, err := parser.ParseProgram(string(data))
	if err != nil {
		return 0
	}
	return 1
}
