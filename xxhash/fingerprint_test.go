package xxhash_test

import (
	"testing"

	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/xxhash"
	"github.com/stretchr/testify/assert"
)

func testIndex() *docbot.Index {
	idx := docbot.NewIndex()
	idx.Add("query", &docbot.Entry{Name: `yii\db\Query`, Desc: "Query represents a SELECT SQL statement."})
	idx.Add("find", &docbot.Entry{Name: `yii\db\ActiveRecord::find()`, Desc: "Creates an ActiveQuery.", DefinedBy: `yii\db\ActiveRecord`})
	idx.Add("query", &docbot.Entry{Name: `yii\db\Command::query()`, Desc: "Executes the SQL statement.", DefinedBy: `yii\db\Command`})
	return idx
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	t.Run("is stable for equal indexes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, xxhash.Fingerprint(testIndex()), xxhash.Fingerprint(testIndex()))
		assert.Len(t, xxhash.Fingerprint(testIndex()), 16)
	})

	t.Run("changes with entry order", func(t *testing.T) {
		t.Parallel()

		reordered := docbot.NewIndex()
		reordered.Add("query", &docbot.Entry{Name: `yii\db\Command::query()`, Desc: "Executes the SQL statement.", DefinedBy: `yii\db\Command`})
		reordered.Add("find", &docbot.Entry{Name: `yii\db\ActiveRecord::find()`, Desc: "Creates an ActiveQuery.", DefinedBy: `yii\db\ActiveRecord`})
		reordered.Add("query", &docbot.Entry{Name: `yii\db\Query`, Desc: "Query represents a SELECT SQL statement."})

		assert.NotEqual(t, xxhash.Fingerprint(testIndex()), xxhash.Fingerprint(reordered))
	})

	t.Run("does not confuse field boundaries", func(t *testing.T) {
		t.Parallel()

		a := docbot.NewIndex()
		a.Add("ab", &docbot.Entry{Name: "x", Desc: "yz"})
		b := docbot.NewIndex()
		b.Add("ab", &docbot.Entry{Name: "xy", Desc: "z"})

		assert.NotEqual(t, xxhash.Fingerprint(a), xxhash.Fingerprint(b))
	})
}
