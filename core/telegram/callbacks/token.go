package callbacks

import (
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// TokenSuffix returns the part of the callback token following the given
// prefix. Handlers registered under a prefix pattern parse their variable
// part out of the token with this helper.
func TokenSuffix(c tele.Context, prefix string) (string, bool) {
	return strings.CutPrefix(CallbackKey(c), prefix)
}

// SuffixInt parses the token suffix after prefix as an int.
func SuffixInt(c tele.Context, prefix string) (int, error) {
	s, ok := TokenSuffix(c, prefix)
	if !ok || s == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

// SuffixInt64 parses the token suffix after prefix as an int64.
func SuffixInt64(c tele.Context, prefix string) (int64, error) {
	s, ok := TokenSuffix(c, prefix)
	if !ok || s == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, 10, 64)
}
