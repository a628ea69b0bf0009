package sections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milchschlumpf/navbug/pkg/navbug/icons"
)

func TestNewRejectsEmpty(t *testing.T) {
	r, err := New()
	assert.Nil(t, r)
	assert.True(t, errors.Is(err, ErrEmptyRegistry))
}

func TestNewRejectsDuplicateRoutes(t *testing.T) {
	_, err := New(Section{Route: "a"}, Section{Route: "a"})
	assert.True(t, errors.Is(err, ErrDuplicateRoute))
}

func TestIDsFollowPosition(t *testing.T) {
	r, err := New(Section{ID: 7, Route: "a"}, Section{ID: 7, Route: "b"}, Section{Route: "c"})
	require.NoError(t, err)

	for i, s := range r.All() {
		assert.Equal(t, i, s.ID)
	}
}

func TestDefault(t *testing.T) {
	r := Default()

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []string{"home1", "home2", "home3", "home4"}, r.Routes())
	assert.Equal(t, "home1", r.First().Route)

	s, ok := r.ByRoute("home3")
	require.True(t, ok)
	assert.Equal(t, 2, s.ID)
	assert.Equal(t, icons.BaselineHome, s.Icon(true))
	assert.Equal(t, icons.OutlineHome, s.Icon(false))

	_, ok = r.ByRoute("settings")
	assert.False(t, ok)
}

func TestAtBounds(t *testing.T) {
	r := Default()

	_, ok := r.At(-1)
	assert.False(t, ok)
	_, ok = r.At(r.Len())
	assert.False(t, ok)

	s, ok := r.At(3)
	require.True(t, ok)
	assert.Equal(t, "home4", s.Route)
}

func TestAllReturnsCopy(t *testing.T) {
	r := Default()

	all := r.All()
	all[0].Route = "mutated"

	assert.Equal(t, "home1", r.First().Route)
}
