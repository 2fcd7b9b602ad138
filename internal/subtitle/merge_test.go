package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t *testing.T, index, timing string, lines ...string) Entry {
	t.Helper()
	return Entry{Index: index, Span: span(t, timing), Lines: lines}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"touching endpoints", "00:00:00,000 --> 00:00:05,000", "00:00:05,000 --> 00:00:10,000", true},
		{"gap", "00:00:00,000 --> 00:00:02,000", "00:00:03,000 --> 00:00:05,000", false},
		{"b starts inside", "00:00:00,000 --> 00:00:04,000", "00:00:01,000 --> 00:00:08,000", true},
		{"b ends inside", "00:00:02,000 --> 00:00:04,000", "00:00:01,000 --> 00:00:03,000", true},
		{"b inside", "00:00:00,000 --> 00:00:10,000", "00:00:02,000 --> 00:00:03,000", true},
		{"identical", "00:00:01,000 --> 00:00:02,000", "00:00:01,000 --> 00:00:02,000", true},
		// only b's endpoints are tested against a
		{"b encloses a", "00:00:02,000 --> 00:00:03,000", "00:00:00,000 --> 00:00:10,000", false},
		{"b before a", "00:00:05,000 --> 00:00:06,000", "00:00:01,000 --> 00:00:02,000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(span(t, tt.a), span(t, tt.b)))
		})
	}
}

func TestMergePair(t *testing.T) {
	a := entry(t, "1", "00:00:02,000 --> 00:00:05,000", "a1", "a2")
	b := entry(t, "2", "00:00:01,500 --> 00:00:09,250", "b1")

	got := MergePair(a, b)
	assert.Equal(t, "1", got.Index)
	assert.Equal(t, "00:00:01,500 --> 00:00:09,250", got.Span.String())
	assert.Equal(t, []string{"a1", "a2", "b1"}, got.Lines)

	got.Lines[0] = "changed"
	assert.Equal(t, "a1", a.Lines[0])
}

func TestMergeTouchingEndpoints(t *testing.T) {
	in := []Entry{
		entry(t, "1", "00:00:00,000 --> 00:00:05,000", "first"),
		entry(t, "2", "00:00:05,000 --> 00:00:10,000", "second"),
	}

	out := Merge(in)
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].Index)
	assert.Equal(t, "00:00:00,000 --> 00:00:10,000", out[0].Span.String())
	assert.Equal(t, []string{"first", "second"}, out[0].Lines)
}

func TestMergeNoOverlap(t *testing.T) {
	in := []Entry{
		entry(t, "1", "00:00:00,000 --> 00:00:02,000", "first"),
		entry(t, "2", "00:00:03,000 --> 00:00:05,000", "second"),
	}

	out := Merge(in)
	require.Len(t, out, 2)
	assert.True(t, out[0].Equal(in[0]))
	assert.True(t, out[1].Equal(in[1]))
}

func TestMergeSinglePass(t *testing.T) {
	in := []Entry{
		entry(t, "A", "00:00:00,000 --> 00:00:04,000", "a"),
		entry(t, "B", "00:00:03,000 --> 00:00:06,000", "b"),
		entry(t, "C", "00:00:05,000 --> 00:00:08,000", "c"),
	}

	out := Merge(in)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Index)
	assert.Equal(t, "00:00:00,000 --> 00:00:06,000", out[0].Span.String())
	assert.Equal(t, []string{"a", "b"}, out[0].Lines)
	assert.True(t, out[1].Equal(in[2]))

	stable := MergeUntilStable(in)
	require.Len(t, stable, 1)
	assert.Equal(t, "00:00:00,000 --> 00:00:08,000", stable[0].Span.String())
	assert.Equal(t, []string{"a", "b", "c"}, stable[0].Lines)
}

func TestMergeLengthBound(t *testing.T) {
	assert.Empty(t, Merge(nil))
	assert.NotNil(t, Merge(nil))
	assert.Empty(t, Merge([]Entry{}))

	one := []Entry{entry(t, "1", "00:00:00,000 --> 00:00:01,000", "x")}
	out := Merge(one)
	require.Len(t, out, 1)
	assert.True(t, out[0].Equal(one[0]))

	var track []Entry
	for i := 0; i < 9; i++ {
		timing := FromMilliseconds(int64(i)*700).String() + SpanSeparator + FromMilliseconds(int64(i)*700+1000).String()
		track = append(track, entry(t, "n", timing, "line"))
		assert.LessOrEqual(t, len(Merge(track)), len(track))
		assert.LessOrEqual(t, len(MergeUntilStable(track)), len(track))
	}
}

func TestMergeOddTail(t *testing.T) {
	in := []Entry{
		entry(t, "1", "00:00:00,000 --> 00:00:02,000", "a"),
		entry(t, "2", "00:00:01,000 --> 00:00:03,000", "b"),
		entry(t, "3", "00:00:10,000 --> 00:00:11,000", "c"),
	}

	out := Merge(in)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"a", "b"}, out[0].Lines)
	assert.Equal(t, "3", out[1].Index)
}

func TestMergeDoesNotAliasInput(t *testing.T) {
	in := []Entry{entry(t, "1", "00:00:00,000 --> 00:00:01,000", "x")}
	out := Merge(in)
	out[0].Lines[0] = "y"
	assert.Equal(t, "x", in[0].Lines[0])
}
