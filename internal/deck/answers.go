package deck

import "sync"

// AnswerBook is the parent-owned answer record: question ID to the committed
// response. A question is answered once a response is committed and can not
// be committed again.
type AnswerBook struct {
	mu        sync.RWMutex
	responses map[string]string
	order     []string
}

// NewAnswerBook returns an empty book.
func NewAnswerBook() *AnswerBook {
	return &AnswerBook{responses: map[string]string{}}
}

// Commit records response for questionID. It returns false, leaving the
// record untouched, when the question is already answered or the response
// is empty.
func (b *AnswerBook) Commit(questionID, response string) bool {
	if response == "" {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.responses[questionID]; exists {
		return false
	}
	b.responses[questionID] = response
	b.order = append(b.order, questionID)
	return true
}

// Response returns the committed response for questionID.
func (b *AnswerBook) Response(questionID string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	response, ok := b.responses[questionID]
	return response, ok
}

// IsAnswered reports whether questionID has a committed response.
func (b *AnswerBook) IsAnswered(questionID string) bool {
	_, ok := b.Response(questionID)
	return ok
}

// Len returns the number of answered questions.
func (b *AnswerBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}

// Answered returns answered question IDs in commit order.
func (b *AnswerBook) Answered() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.order...)
}
