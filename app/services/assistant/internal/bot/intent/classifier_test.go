package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyVerbatimSynonym(t *testing.T) {
	c := NewClassifier(Billing, DefaultThreshold)

	res := c.Classify("inventory")
	assert.Equal(t, "Inventory", res.Category)
	assert.Equal(t, 1.0, res.Confidence)

	res = c.Classify("logistics")
	assert.Equal(t, "Logistics", res.Category)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestClassifyGibberish(t *testing.T) {
	c := NewClassifier(Billing, DefaultThreshold)
	res := c.Classify("zxqv plomk wrrt")
	assert.Equal(t, KeyUnknown, res.Category)
}

func TestClassifyGreetingShortCircuits(t *testing.T) {
	c := NewClassifier(Billing, DefaultThreshold)

	res := c.Classify("hi")
	assert.Equal(t, KeyGreeting, res.Category)
	assert.Equal(t, 1.0, res.Confidence)

	// prefix must be followed by a space
	res = c.Classify("hello there, any update on stock")
	assert.Equal(t, KeyGreeting, res.Category)

	res = c.Classify("highlight the stock issue")
	assert.NotEqual(t, KeyGreeting, res.Category)
}

func TestClassifyTieKeepsTaxonomyOrder(t *testing.T) {
	taxonomy := Taxonomy{
		{Key: "First", Code: "FST", Synonyms: []string{"alpha"}},
		{Key: "Second", Code: "SND", Synonyms: []string{"alpha"}},
	}
	c := NewClassifier(taxonomy, DefaultThreshold)

	res := c.Classify("alpha")
	assert.Equal(t, "First", res.Category)
}

func TestIsGreeting(t *testing.T) {
	assert.True(t, IsGreeting("  Hi  "))
	assert.True(t, IsGreeting("good morning team"))
	assert.False(t, IsGreeting(""))
	assert.False(t, IsGreeting("hijack"))
}

func TestMentionsProduct(t *testing.T) {
	assert.True(t, MentionsProduct("I want a T-Shirt"))
	assert.True(t, MentionsProduct("what's the PRICE of this"))
	assert.False(t, MentionsProduct("is the store open tomorrow"))
}

func TestCodeFor(t *testing.T) {
	assert.Equal(t, "OPS", Billing.CodeFor("Operations"))
	assert.Equal(t, UnknownCode, Billing.CodeFor("NoSuchKey"))
	assert.Equal(t, UnknownCode, Billing.CodeFor(KeyUnknown))
}
