package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductByID(t *testing.T) {
	c := NewCatalog()

	p, ok := c.ProductByID("router-x1")
	require.True(t, ok)
	assert.Equal(t, "TechConnect Pro Router X1", p.Name)
	assert.Equal(t, 299.99, p.Price)
	assert.Len(t, p.Features, 3)

	_, ok = c.ProductByID("teapot-9000")
	assert.False(t, ok)
}

func TestPlanByID(t *testing.T) {
	c := NewCatalog()

	p, ok := c.PlanByID("enterprise")
	require.True(t, ok)
	assert.Equal(t, "Enterprise Plan", p.Name)
	assert.Equal(t, "1 Gbps", p.Speed)

	_, ok = c.PlanByID("ultra")
	assert.False(t, ok)
}

func TestListingsNeverEmpty(t *testing.T) {
	c := NewCatalog()
	assert.Len(t, c.Products(), 3)
	assert.Len(t, c.Plans(), 3)

	// Planlar fiyata göre sıralı gelir
	plans := c.Plans()
	assert.Equal(t, "basic", plans[0].ID)
	assert.Equal(t, "enterprise", plans[2].ID)
}
