package utils

import (
	"reflect"
	"testing"
)

func TestFormatDisplayDate(t *testing.T) {
	cases := map[string]string{
		"2026-05-10":          "10/05/2026",
		"2026-05-10 00:00:00": "10/05/2026",
		"":                    "",
		"domani":              "domani",
	}
	for in, want := range cases {
		if got := FormatDisplayDate(in); got != want {
			t.Errorf("FormatDisplayDate(%q) = %q want %q", in, got, want)
		}
	}
}

func TestTimeHM(t *testing.T) {
	if got := TimeHM("08:30:00"); got != "08:30" {
		t.Fatalf("TimeHM = %q", got)
	}
	if !ValidTimeHM("23:59") || ValidTimeHM("24:10") || ValidTimeHM("8") {
		t.Fatalf("ValidTimeHM mismatch")
	}
}

func TestCleanList(t *testing.T) {
	got := CleanList([]string{" Centro ", "", "Stazione", "Centro", "Piazza  Duomo"})
	want := []string{"Centro", "Stazione", "Piazza Duomo"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CleanList = %v", got)
	}
}

func TestSafeFilename(t *testing.T) {
	if got := SafeFilename("kwitansi", "Gita al Lago di Como!", "pdf"); got != "kwitansi-gita-al-lago-di-como.pdf" {
		t.Fatalf("SafeFilename = %q", got)
	}
	if got := SafeFilename("kwitansi", "  ", "pdf"); got != "kwitansi-na.pdf" {
		t.Fatalf("SafeFilename empty = %q", got)
	}
}
