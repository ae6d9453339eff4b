package category

import (
	"testing"

	"github.com/learnercafe/learnercafe/internal/app/system/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFilter_Allowed(t *testing.T) {
	f := New(Default...)

	for _, tok := range Default {
		assert.True(t, f.Allowed(tok), "expected %q to be allowed", tok)
	}

	for _, tok := range []string{"", "Slide", "SLIDE", " slide", "CSE", "poetry", "slide,lecture"} {
		assert.False(t, f.Allowed(tok), "expected %q to be rejected", tok)
	}
}

func TestParse(t *testing.T) {
	f := Parse(" CSE, EEE ,,MATH,CSE ")

	assert.Equal(t, []string{"CSE", "EEE", "MATH"}, f.Tokens())
	assert.True(t, f.Allowed("EEE"))
	assert.False(t, f.Allowed("slide"))
}

func TestParse_Empty(t *testing.T) {
	assert.Equal(t, 0, Parse("").Len())
	assert.Equal(t, 0, Parse(" , ").Len())
}

func TestQuery(t *testing.T) {
	f := New(Default...)

	q, err := f.Query("labreport")
	require.NoError(t, err)
	assert.Equal(t, bson.M{"category": "labreport"}, q)

	q, err = f.Query("poetry")
	require.Error(t, err)
	assert.Nil(t, q)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestTokens_ReturnsCopy(t *testing.T) {
	f := New("slide", "lecture")
	toks := f.Tokens()
	toks[0] = "mutated"

	assert.True(t, f.Allowed("slide"))
	assert.Equal(t, "slide", f.Tokens()[0])
}
