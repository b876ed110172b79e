package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upbvirtual/enroller/pkg/roster"
)

func rec(period, section, id, name string) roster.Record {
	return roster.Record{Period: period, SectionID: section, PersonID: id, FirstName: name}
}

func TestRecords(t *testing.T) {
	in := []roster.Record{
		rec("202510", "100", "000000001", "first"),
		rec("202510", "100", "000000002", "other"),
		rec("202510", "100", "000000001", "second"),
		rec("202520", "100", "000000001", "next term"),
		rec("202510", "200", "000000001", "other section"),
	}

	out, dropped := Records(in)
	assert.Equal(t, 1, dropped)
	require.Len(t, out, 4)
	assert.Equal(t, "first", out[0].FirstName, "first occurrence wins")
	assert.Equal(t, "other", out[1].FirstName)
	assert.Equal(t, "next term", out[2].FirstName)
}

func TestRecordsIdempotent(t *testing.T) {
	in := []roster.Record{
		rec("202510", "100", "000000001", "a"),
		rec("202510", "100", "000000001", "b"),
		rec("202510", "100", "000000003", "c"),
	}
	once, _ := Records(in)
	twice, dropped := Records(once)
	assert.Equal(t, once, twice)
	assert.Zero(t, dropped)
}

func TestRecordsEmpty(t *testing.T) {
	out, dropped := Records(nil)
	assert.Empty(t, out)
	assert.Zero(t, dropped)
}
