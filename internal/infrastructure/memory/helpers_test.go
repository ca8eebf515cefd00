package memory_test

import "time"

var testTime = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
