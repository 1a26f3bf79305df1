package picker_test

import (
	"testing"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
	"github.com/katalvlaran/rectilinear/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates() []brick.LayerBrick {
	return []brick.LayerBrick{
		{Layer: 1, Brick: brick.Brick{Vertical: true, X: brick.PlaneMid + 20, Y: brick.PlaneMid}},
		{Layer: 1, Brick: brick.Brick{Vertical: true, X: brick.PlaneMid + 40, Y: brick.PlaneMid}},
		{Layer: 1, Brick: brick.Brick{Vertical: true, X: brick.PlaneMid + 60, Y: brick.PlaneMid}},
	}
}

func maxCombo() combo.Combination {
	var m combo.Combination
	m.LayerSizes[0] = 1
	m.LayerSizes[1] = 3
	m.Height = 2
	return m
}

func TestBrickPickerEnumeratesAllPairs(t *testing.T) {
	v := candidates()
	mc := maxCombo()
	p := picker.NewBrickPicker(v, 0, 2)

	var c combo.Combination
	count := 0
	for p.Next(&c, &mc) {
		require.Equal(t, uint8(2), c.Size)
		count++
		c.RemoveLastBrick()
		c.RemoveLastBrick()
	}
	assert.Equal(t, 3, count, "C(3,2) == 3")
}

func TestBrickPickerRestoresStateOnExhaustion(t *testing.T) {
	v := candidates()
	mc := maxCombo()
	p := picker.NewBrickPicker(v, 0, 1)

	var c combo.Combination
	for p.Next(&c, &mc) {
		c.RemoveLastBrick()
	}
	assert.Equal(t, uint8(0), c.Size)
}

func TestMultiBatchSizeBrickPickerCoversEverySize(t *testing.T) {
	v := candidates()
	mc := maxCombo()
	m := picker.NewMultiBatchSizeBrickPicker(v, 2)

	counts := map[int]int{}
	for {
		picked, n, ok := m.Next(&mc)
		if !ok {
			break
		}
		require.Len(t, picked, n)
		counts[n]++
	}
	assert.Equal(t, 3, counts[1]) // C(3,1)
	assert.Equal(t, 3, counts[2]) // C(3,2)
}

func TestMultiBatchSizeBrickPickerConcurrentCallersGetDisjointWork(t *testing.T) {
	v := candidates()
	mc := maxCombo()
	m := picker.NewMultiBatchSizeBrickPicker(v, 2)

	results := make(chan int, 16)
	done := make(chan struct{})
	workers := 4
	for i := 0; i < workers; i++ {
		go func() {
			for {
				_, _, ok := m.Next(&mc)
				if !ok {
					done <- struct{}{}
					return
				}
				results <- 1
			}
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}
	close(results)
	total := 0
	for range results {
		total++
	}
	assert.Equal(t, 6, total) // 3 singles + 3 pairs, no duplicates/drops
}
