package theme

import "testing"

func TestByName(t *testing.T) {
	for _, th := range All {
		if got := ByName(th.Name); got.Name != th.Name {
			t.Errorf("ByName(%q) = %q", th.Name, got.Name)
		}
	}
	if got := ByName("flexoki-dark"); got.Name != Blush.Name {
		t.Errorf("unknown theme = %q, want %q", got.Name, Blush.Name)
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(Blush.Name)

	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %q, want terminal", Active.Name)
	}
}
