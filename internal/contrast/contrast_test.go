package contrast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lmarchand/huegen/internal/color"
)

func TestLuminanceExtremes(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0.0, Luminance(color.RGB{}), 1e-9)
	require.InDelta(t, 1.0, Luminance(color.RGB{R: 255, G: 255, B: 255}), 1e-9)
}

func TestRatioBlackWhite(t *testing.T) {
	t.Parallel()

	ratio, ok := Ratio("#000000", "#FFFFFF")
	require.True(t, ok)
	require.InDelta(t, 21.0, ratio, 1e-9)
}

func TestRatioSymmetricAndBounded(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"#3366FF", "#FFFFFF"},
		{"#112233", "#FEDCBA"},
		{"#808080", "#808080"},
		{"#ABCDEF", "#000000"},
	}

	for _, pair := range pairs {
		forward, ok := Ratio(pair[0], pair[1])
		require.True(t, ok)
		backward, ok := Ratio(pair[1], pair[0])
		require.True(t, ok)

		require.Equal(t, forward, backward)
		require.GreaterOrEqual(t, forward, MinRatio)
		require.LessOrEqual(t, forward, MaxRatio)
	}
}

func TestRatioIdentityIsOne(t *testing.T) {
	t.Parallel()

	ratio, ok := Ratio("#3366FF", "#3366FF")
	require.True(t, ok)
	require.InDelta(t, 1.0, ratio, 1e-9)
}

func TestRatioRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, ok := Ratio("nope", "#FFFFFF")
	require.False(t, ok)

	_, ok = Ratio("#FFFFFF", "")
	require.False(t, ok)
}

func TestCacheMemoizesUnorderedPairs(t *testing.T) {
	t.Parallel()

	cache := NewCache(10)

	first, ok := cache.Ratio("#000000", "#FFFFFF")
	require.True(t, ok)
	require.Equal(t, 1, cache.Len())

	second, ok := cache.Ratio("#FFFFFF", "#000000")
	require.True(t, ok)
	require.Equal(t, first, second)
	require.Equal(t, 1, cache.Len(), "reversed pair must hit the same entry")
}

func TestCacheEvictsFIFO(t *testing.T) {
	t.Parallel()

	cache := NewCache(3)
	for i := 0; i < 5; i++ {
		_, ok := cache.Ratio(fmt.Sprintf("#%02X0000", i*10), "#FFFFFF")
		require.True(t, ok)
	}
	require.Equal(t, 3, cache.Len())
}

func TestCacheReset(t *testing.T) {
	t.Parallel()

	cache := NewCache(10)
	_, ok := cache.Ratio("#123456", "#FFFFFF")
	require.True(t, ok)

	cache.Reset()
	require.Equal(t, 0, cache.Len())
}

func TestCacheSkipsUnparsableInput(t *testing.T) {
	t.Parallel()

	cache := NewCache(10)
	_, ok := cache.Ratio("bogus", "#FFFFFF")
	require.False(t, ok)
	require.Equal(t, 0, cache.Len())
}

func TestNilCacheFallsThrough(t *testing.T) {
	t.Parallel()

	var cache *Cache
	ratio, ok := cache.Ratio("#000000", "#FFFFFF")
	require.True(t, ok)
	require.InDelta(t, 21.0, ratio, 1e-9)
}
