package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectGender(t *testing.T) {
	g, ok := DetectGender("something for my wife")
	assert.True(t, ok)
	assert.Equal(t, GenderWomen, g)

	// "men" is a substring of "women"; the women set must win
	g, ok = DetectGender("women sneakers")
	assert.True(t, ok)
	assert.Equal(t, GenderWomen, g)

	g, ok = DetectGender("for men")
	assert.True(t, ok)
	assert.Equal(t, GenderMen, g)

	g, ok = DetectGender("toddler socks")
	assert.True(t, ok)
	assert.Equal(t, GenderKids, g)

	_, ok = DetectGender("show me the catalog")
	assert.False(t, ok)
}

func TestNeedsClarification(t *testing.T) {
	assert.True(t, NeedsClarification("I want shoes", nil))

	// gender in the text itself
	assert.False(t, NeedsClarification("shoes for men", nil))

	// gender-specific item never pauses
	assert.False(t, NeedsClarification("bridal heels", nil))

	// no product mention at all
	assert.False(t, NeedsClarification("when do you open", nil))
}

func TestNeedsClarificationHistoryLookback(t *testing.T) {
	// a gender mention inside the lookback window suppresses the question
	history := []string{"looking for something", "it's for my husband"}
	assert.False(t, NeedsClarification("show me a watch", history))

	// same mention pushed beyond the window no longer counts
	history = []string{
		"it's for my husband",
		"what's new", "anything else", "thanks", "ok",
	}
	assert.True(t, NeedsClarification("show me a watch", history))
}

func TestReformulate(t *testing.T) {
	assert.Equal(t, "shoes for women", Reformulate("shoes", GenderWomen))
}
