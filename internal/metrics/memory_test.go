package metrics

import "testing"

func TestReadRuntime(t *testing.T) {
	t.Parallel()

	st := ReadRuntime()
	if st.HeapAlloc == 0 || st.Sys == 0 {
		t.Errorf("memory not sampled: %+v", st)
	}
	if st.NumGoroutine == 0 {
		t.Error("NumGoroutine should be > 0")
	}
}
