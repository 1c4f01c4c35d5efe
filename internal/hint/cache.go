package hint

import "quizcard/internal/question"

// Cache holds the hint for the question currently on display. It generates
// at most once per question ID and forgets the hint when the ID changes.
type Cache struct {
	generate   Generator
	questionID string
	hint       Hint
	ready      bool
}

// NewCache returns a cache backed by generate, or by the default English
// generator when generate is nil.
func NewCache(generate Generator) Cache {
	if generate == nil {
		generate = NewGenerator(DefaultTexts)
	}
	return Cache{generate: generate}
}

// Get returns the cached hint for q, generating it on first use.
func (c *Cache) Get(q question.Question) Hint {
	if c.ready && c.questionID == q.ID {
		return c.hint
	}
	if c.generate == nil {
		c.generate = NewGenerator(DefaultTexts)
	}
	c.questionID = q.ID
	c.hint = c.generate(q)
	c.ready = true
	return c.hint
}

// Peek returns the cached hint without generating one.
func (c Cache) Peek(questionID string) (Hint, bool) {
	if !c.ready || c.questionID != questionID {
		return Hint{}, false
	}
	return c.hint, true
}

// Reset drops the cached hint if it belongs to a different question.
func (c *Cache) Reset(questionID string) {
	if c.questionID == questionID {
		return
	}
	c.questionID = ""
	c.hint = Hint{}
	c.ready = false
}
