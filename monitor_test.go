package supervise

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCell_WrittenExactlyOnce(t *testing.T) {
	t.Parallel()

	cell := newStatusCell()

	cell.put(&Status{Code: 0})
	cell.put(&Status{Code: 1}) // late writer loses

	st, ok := cell.get()
	require.True(t, ok)
	assert.Equal(t, 0, st.Code)
}

func TestStatusCell_WaitBlocksUntilPut(t *testing.T) {
	t.Parallel()

	cell := newStatusCell()

	go func() {
		time.Sleep(50 * time.Millisecond)
		cell.put(&Status{Code: 42})
	}()

	start := time.Now()
	st := cell.wait()

	assert.Equal(t, 42, st.Code)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestStatusCell_WaitAfterPutReturnsImmediately(t *testing.T) {
	t.Parallel()

	cell := newStatusCell()
	cell.put(&Status{Code: 7})

	start := time.Now()
	st := cell.wait()

	assert.Equal(t, 7, st.Code)
	assert.Less(t, time.Since(start), recheckInterval)
}

func TestStatusCell_ReadAnyNumberOfTimes(t *testing.T) {
	t.Parallel()

	cell := newStatusCell()
	cell.put(&Status{Code: 3})

	var wg sync.WaitGroup

	for n := 0; n < 4; n++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			assert.Equal(t, 3, cell.wait().Code)
		}()
	}

	wg.Wait()
}
