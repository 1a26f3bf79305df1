package report_test

import (
	"testing"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/report"
	"github.com/stretchr/testify/assert"
)

func TestConnectedAllZeroColors(t *testing.T) {
	a := report.Report{Base: 3, Colors: []uint8{0, 0}}
	b := report.Report{Base: 3, Colors: []uint8{0, 0}}
	assert.True(t, report.Connected(a, b))
}

func TestNotConnectedWhenSharedNonZeroColorMissesBrickZero(t *testing.T) {
	a := report.Report{Base: 3, Colors: []uint8{1, 1}}
	b := report.Report{Base: 3, Colors: []uint8{2, 3}}
	// Neither is connected to brick 0 in a, but a says bricks 1,2 share a
	// color (so they're connected to each other, not necessarily to 0):
	// overall this should NOT fully connect since brick 0 is isolated.
	assert.False(t, report.Connected(a, b))
}

func TestConnectedDisjoint(t *testing.T) {
	a := report.Report{Base: 4, Colors: []uint8{1, 2, 3}}
	b := report.Report{Base: 4, Colors: []uint8{1, 2, 3}}
	assert.False(t, report.Connected(a, b))
}

func TestCountUpDisconnectedIsZero(t *testing.T) {
	a := report.Report{Base: 4, Colors: []uint8{1, 2, 3}, Counts: brick.Counts{All: 10}}
	b := report.Report{Base: 4, Colors: []uint8{1, 2, 3}, Counts: brick.Counts{All: 5}}
	assert.True(t, report.CountUp(a, b).Empty())
}

func TestCountUpNonSymmetricIsProduct(t *testing.T) {
	a := report.Report{Base: 2, Colors: []uint8{0}, Counts: brick.Counts{All: 7}}
	b := report.Report{Base: 2, Colors: []uint8{0}, Counts: brick.Counts{All: 3}}
	got := report.CountUp(a, b)
	assert.Equal(t, uint64(21), got.All)
}

func TestCountUpCommutative(t *testing.T) {
	a := report.Report{Base: 2, Colors: []uint8{0}, Counts: brick.Counts{All: 7}}
	b := report.Report{Base: 2, Colors: []uint8{0}, Counts: brick.Counts{All: 3}}
	assert.Equal(t, report.CountUp(a, b), report.CountUp(b, a))
}

func TestGetReportsDecodesColors(t *testing.T) {
	counts := map[int64]brick.Counts{
		112: {All: 1}, // base=3 -> 2 color digits: "1","2" -> colors {0,1}
	}
	reports := report.GetReports(counts, 3, false, false)
	assert.Len(t, reports, 1)
	assert.Equal(t, []uint8{0, 1}, reports[0].Colors)
}
