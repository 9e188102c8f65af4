package docbot_test

import (
	"testing"

	"github.com/fwojciec/docbot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Query", "query"},
		{"total_count", "totalcount"},
		{"POS_HEAD", "poshead"},
		{"__construct", "construct"},
		{"getDb", "getdb"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got := docbot.Normalize(tt.in)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, docbot.Normalize(got), "normalize should be idempotent")
		})
	}
}

func TestKeyword(t *testing.T) {
	t.Parallel()

	t.Run("uses last namespace segment of a type name", func(t *testing.T) {
		t.Parallel()

		keyword, err := docbot.Keyword(`yii\db\Query`)

		require.NoError(t, err)
		assert.Equal(t, "query", keyword)
	})

	t.Run("ignores property dollar sign", func(t *testing.T) {
		t.Parallel()

		keyword, err := docbot.Keyword("$totalCount")

		require.NoError(t, err)
		assert.Equal(t, "totalcount", keyword)
	})

	t.Run("strips underscores from constants", func(t *testing.T) {
		t.Parallel()

		keyword, err := docbot.Keyword("EVENT_BEFORE_INSERT")

		require.NoError(t, err)
		assert.Equal(t, "eventbeforeinsert", keyword)
	})

	t.Run("returns EMALFORMED for empty name", func(t *testing.T) {
		t.Parallel()

		_, err := docbot.Keyword("")

		require.Error(t, err)
		assert.Equal(t, docbot.EMALFORMED, docbot.ErrorCode(err))
	})

	t.Run("returns EMALFORMED when name ends in punctuation", func(t *testing.T) {
		t.Parallel()

		_, err := docbot.Keyword(`yii\db\`)

		require.Error(t, err)
		assert.Equal(t, docbot.EMALFORMED, docbot.ErrorCode(err))
	})

	t.Run("returns EMALFORMED for underscore-only name", func(t *testing.T) {
		t.Parallel()

		_, err := docbot.Keyword("__")

		require.Error(t, err)
		assert.Equal(t, docbot.EMALFORMED, docbot.ErrorCode(err))
	})
}
