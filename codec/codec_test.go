package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string    `json:"name"`
	Count int       `json:"count"`
	Vals  []float64 `json:"vals"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "json-indent", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}
	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	in := sample{Name: "w0", Count: 3, Vals: []float64{0.301, 0.578, 0.678}}

	for _, name := range []string{"json", "json-indent", "go-json"} {
		c, _ := ByName(name)
		data, err := c.Marshal(in)
		require.NoError(t, err, name)

		var out sample
		require.NoError(t, c.Unmarshal(data, &out), name)
		assert.Equal(t, in, out, name)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	in := sample{Name: "w0", Count: 3, Vals: []float64{0.1, 0.2}}
	for _, name := range []string{"json", "go-json"} {
		c, _ := ByName(name)
		a := MustMarshal(c, in)
		b := MustMarshal(c, in)
		assert.Equal(t, a, b, name)
	}
}
