package gigpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStableBySortOrder_NilIsZeroAndTiesKeepFetchOrder(t *testing.T) {
	type row struct {
		id    string
		order *int
	}
	rows := []row{{"a", nil}, {"b", ip(1)}, {"c", ip(0)}, {"d", nil}, {"e", ip(-1)}}
	got := stableBySortOrder(rows, func(r row) *int { return r.order })

	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.id
	}
	assert.Equal(t, []string{"e", "a", "c", "d", "b"}, ids)
	assert.Equal(t, "a", rows[0].id, "input must not be reordered")
}
