package formvalidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name  string `form:"name" validate:"min=3,max=10"`
	Price string `form:"price" validate:"required,numeric"`
}

var sampleMessages = Messages{
	"Name.min":       "name too short",
	"Price.required": "price missing",
	"Price":          "price invalid",
}

func TestValidate(t *testing.T) {
	t.Run("valid input has no errors", func(t *testing.T) {
		assert.Empty(t, Validate(sampleInput{Name: "Fire", Price: "12.5"}, sampleMessages))
	})

	t.Run("tag specific message wins", func(t *testing.T) {
		errs := Validate(sampleInput{Name: "Fi", Price: ""}, sampleMessages)
		require.Len(t, errs, 2)
		assert.Equal(t, FieldError{Field: "name", Message: "name too short"}, errs[0])
		assert.Equal(t, FieldError{Field: "price", Message: "price missing"}, errs[1])
	})

	t.Run("field message is the fallback", func(t *testing.T) {
		errs := Validate(sampleInput{Name: "Water", Price: "abc"}, sampleMessages)
		require.Len(t, errs, 1)
		assert.Equal(t, "price invalid", errs[0].Message)
	})

	t.Run("generic message without a mapping", func(t *testing.T) {
		errs := Validate(sampleInput{Name: "Waterfallsss", Price: "1"}, sampleMessages)
		require.Len(t, errs, 1)
		assert.Equal(t, "name is invalid", errs[0].Message)
	})
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fire", "Fire"},
		{"<b>Fire</b>", "&lt;b&gt;Fire&lt;&#x2F;b&gt;"},
		{`Tom & "Jerry"`, "Tom &amp; &quot;Jerry&quot;"},
		{"it's `x` \\ y", "it&#x27;s &#96;x&#96; &#x5C; y"},
		{"Pokémon", "Pokémon"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "Fire", Trim("  Fire \n"))
	assert.Equal(t, "", Trim("   "))
}

func TestParseIDs(t *testing.T) {
	ids, invalid := ParseIDs([]string{"3", " 1 ", "", "3", "abc", "0", "2"})
	assert.Equal(t, []uint{3, 1, 2}, ids)
	assert.Equal(t, []string{"abc", "0"}, invalid)

	ids, invalid = ParseIDs(nil)
	assert.Empty(t, ids)
	assert.Empty(t, invalid)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"", "0", "-1", "x1", "1.5"} {
		_, err := ParseID(raw)
		assert.Error(t, err, raw)
	}
}
