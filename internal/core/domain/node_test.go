package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/waypoint/internal/core/domain"
)

func TestNode(t *testing.T) {
	a1 := domain.NewNode("A")
	a2 := domain.NewNode("A")
	b := domain.NewNode("B")

	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, b)
	assert.Equal(t, "A", a1.String())
	assert.Negative(t, a1.Compare(b))
	assert.Zero(t, a1.Compare(a2))
}

func TestNode_Zero(t *testing.T) {
	var n domain.Node

	assert.True(t, n.IsZero())
	assert.Empty(t, n.String())
	assert.False(t, domain.NewNode("A").IsZero())
}

func TestNode_AsMapKey(t *testing.T) {
	seen := map[domain.Node]int{}
	for _, n := range domain.NewNodes("A", "B", "A", "C", "A") {
		seen[n]++
	}

	assert.Len(t, seen, 3)
	assert.Equal(t, 3, seen[domain.NewNode("A")])
}

func TestNode_JSON(t *testing.T) {
	t.Run("encodes label", func(t *testing.T) {
		data, err := json.Marshal(domain.NewNode("Kiel"))
		require.NoError(t, err)
		assert.JSONEq(t, `"Kiel"`, string(data))
	})

	t.Run("zero node encodes empty label", func(t *testing.T) {
		data, err := json.Marshal(domain.Node{})
		require.NoError(t, err)
		assert.JSONEq(t, `""`, string(data))
	})

	t.Run("map keys use labels", func(t *testing.T) {
		data, err := json.Marshal(map[domain.Node]int{domain.NewNode("B"): 4})
		require.NoError(t, err)
		assert.JSONEq(t, `{"B":4}`, string(data))
	})
}

func TestNewNode_EmptyLabelIsZero(t *testing.T) {
	assert.True(t, domain.NewNode("").IsZero())
	assert.False(t, domain.NewNode("A").IsZero())
}
