package callbacks

import (
	"testing"

	"github.com/stretchr/testify/require"

	tele "gopkg.in/telebot.v4"
)

type cbCtx struct {
	tele.Context
	cb *tele.Callback
}

func (c *cbCtx) Callback() *tele.Callback { return c.cb }

func withToken(token string) *cbCtx {
	return &cbCtx{cb: &tele.Callback{Unique: token}}
}

func TestTokenSuffix(t *testing.T) {
	suffix, ok := TokenSuffix(withToken("category_Electronics"), "category_")
	require.True(t, ok)
	require.Equal(t, "Electronics", suffix)

	_, ok = TokenSuffix(withToken("catalog"), "category_")
	require.False(t, ok)
}

func TestSuffixInt(t *testing.T) {
	id, err := SuffixInt(withToken("add_3"), "add_")
	require.NoError(t, err)
	require.Equal(t, 3, id)

	_, err = SuffixInt(withToken("add_"), "add_")
	require.Error(t, err, "empty suffix is malformed")

	_, err = SuffixInt(withToken("add_x"), "add_")
	require.Error(t, err)
}

func TestSuffixInt64(t *testing.T) {
	id, err := SuffixInt64(withToken("book_4"), "book_")
	require.NoError(t, err)
	require.Equal(t, int64(4), id)
}

func TestParseCallbackDataEncoded(t *testing.T) {
	key, payload := ParseCallbackData(&tele.Callback{Data: "\\fadd_3|extra"})
	require.Equal(t, "add_3", key)
	require.Equal(t, "extra", payload)

	key, payload = ParseCallbackData(&tele.Callback{Data: "category_Books"})
	require.Equal(t, "category_Books", key)
	require.Empty(t, payload)
}
