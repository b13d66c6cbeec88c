package dto

import (
	"strconv"
	"strings"
)

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func itoa(n int) string { return strconv.Itoa(n) }
