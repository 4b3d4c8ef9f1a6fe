package wyrand

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(New(42))
	require.NoError(t, err)
	assert.Equal(t, `{"seed":42}`, string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	rng := New(0xdeadbeef)

	// Advance mid-stream before saving.
	for i := 0; i < 17; i++ {
		rng.Uint64()
	}

	data, err := json.Marshal(rng)
	require.NoError(t, err)

	restored := &WyRand{}
	require.NoError(t, json.Unmarshal(data, restored))

	for i := 0; i < 50; i++ {
		require.Equal(t, rng.Uint64(), restored.Uint64(), "diverged at step %d", i)
	}
}

func TestJSONLargeState(t *testing.T) {
	// States above 2^63 must survive the trip intact.
	rng := New(math.MaxUint64)
	data, err := json.Marshal(rng)
	require.NoError(t, err)

	restored := &WyRand{}
	require.NoError(t, json.Unmarshal(data, restored))
	assert.Equal(t, rng.Uint64(), restored.Uint64())
}

func TestUnmarshalJSONRejectsGarbage(t *testing.T) {
	restored := &WyRand{}
	assert.Error(t, json.Unmarshal([]byte(`{"seed":"not a number"}`), restored))
}
