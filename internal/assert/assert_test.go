package assert

import "testing"

func TestThat(t *testing.T) {
	defer func() {
		r := recover()
		if Enabled && r == nil {
			t.Error("expected panic in debug build")
		}
		if !Enabled && r != nil {
			t.Errorf("unexpected panic in release build: %v", r)
		}
	}()
	That(true, "never")
	That(false, "value %d", 3)
}
