package server

import "testing"

func TestLogHubRing(t *testing.T) {
	h := newLogHub(4)
	for i := 1; i <= 6; i++ {
		h.add(LogEntry{Path: "/", Status: 200, TimeUnixMs: int64(i)})
	}

	all := h.snapshot(0)
	if len(all) != 4 {
		t.Fatalf("got %d entries, want 4 (capacity)", len(all))
	}
	// Oldest retained entry is number 3, IDs keep counting.
	if all[0].ID != 3 || all[3].ID != 6 {
		t.Errorf("ids: %d..%d, want 3..6", all[0].ID, all[3].ID)
	}

	last := h.snapshot(2)
	if len(last) != 2 {
		t.Fatalf("got %d entries, want 2", len(last))
	}
	if last[0].ID != 5 || last[1].ID != 6 {
		t.Errorf("ids: %d, %d, want 5, 6", last[0].ID, last[1].ID)
	}
}

func TestStatsHub(t *testing.T) {
	h := newStatsHub()
	h.add(200, 5, 11, 1)
	h.add(404, 0, 0, 1)
	h.add(500, 0, 0, 4)

	st := h.snapshot()
	if st.TotalReq != 3 {
		t.Errorf("total: %d", st.TotalReq)
	}
	if st.TotalErr != 2 {
		t.Errorf("errors: %d", st.TotalErr)
	}
	if st.BytesIn != 5 || st.BytesOut != 11 {
		t.Errorf("bytes: in=%d out=%d", st.BytesIn, st.BytesOut)
	}
	if st.AvgMs != 2 {
		t.Errorf("avg: %d", st.AvgMs)
	}
	if st.ByStatus[200] != 1 || st.ByStatus[404] != 1 || st.ByStatus[500] != 1 {
		t.Errorf("by status: %v", st.ByStatus)
	}
}
