package question

import (
	"fmt"

	"github.com/google/uuid"
)

// idNamespace scopes derived question IDs.
var idNamespace = uuid.MustParse("3f0c8a4e-6b1d-5c7e-9a2f-1d4b6e8c0a35")

// DeriveID returns a stable ID for a question that has none. The same text
// at the same position always yields the same ID.
func DeriveID(q Question, index int) string {
	name := fmt.Sprintf("%d\x00%s\x00%s", index, q.Type, q.Text)
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}
