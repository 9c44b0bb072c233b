package usecase

import (
	"time"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/testutil"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: testNow}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleStore returns a store holding:
//
//	0: "write report"  p3 c1 due 03-12 open
//	1: "buy milk"      p1 c2 due 03-05 done
//	2: "call bob"      p3 c1 due 03-08 open
//	3: "file taxes"    p2 c3 no due    open
func sampleStore() *testutil.MockTaskStore {
	return testutil.NewMockTaskStore(
		domain.NewTask("write report", 3, day(2026, 3, 12), false, 1),
		domain.NewTask("buy milk", 1, day(2026, 3, 5), true, 2),
		domain.NewTask("call bob", 3, day(2026, 3, 8), false, 1),
		domain.NewTask("file taxes", 2, time.Time{}, false, 3),
	)
}

func indexes(tasks []IndexedTask) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.Index
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
