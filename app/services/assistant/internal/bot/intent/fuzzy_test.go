package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIdentity(t *testing.T) {
	for _, s := range []string{"shoes", "Assalam o Alaikum", "漢字テスト"} {
		assert.Equal(t, 1.0, Score(s, s), "score(s, s) must be 1 for %q", s)
	}
}

func TestScoreEmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Score("", "shoes"))
	assert.Equal(t, 0.0, Score("shoes", ""))
	assert.Equal(t, 0.0, Score("", ""))
}

func TestScoreContainmentIsExactlyOne(t *testing.T) {
	assert.Equal(t, 1.0, Score("I want new shoes please", "shoes"))
	assert.Equal(t, 1.0, Score("shoes", "I want new shoes please"))
	assert.Equal(t, 1.0, Score("SHOES", "shoes"))
}

func TestScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, Score("Sneakers", "sneaker"), Score("sneakers", "SNEAKER"))
}

func TestScoreNearMiss(t *testing.T) {
	s := Score("sheos", "shoes")
	assert.Greater(t, s, 0.5)
	assert.Less(t, s, 1.0)
}

func TestScoreUnrelated(t *testing.T) {
	assert.Less(t, Score("qwxzk", "perfume"), 0.3)
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein([]rune("abc"), []rune("abc")))
	assert.Equal(t, 3, levenshtein([]rune("abc"), []rune("")))
	assert.Equal(t, 1, levenshtein([]rune("kitten"), []rune("mitten")))
	assert.Equal(t, 3, levenshtein([]rune("kitten"), []rune("sitting")))
}
