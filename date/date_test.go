package date

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestFormatGermanDate(t *testing.T) {
	tm := time.Date(2026, 3, 5, 10, 15, 0, 0, time.UTC)
	got := Format(language.German, Date, tm)
	if got != "05.03.2026" {
		t.Errorf("Format(de, Date) = %q, want %q", got, "05.03.2026")
	}
}

func TestFormatDefaultLocaleDate(t *testing.T) {
	tm := time.Date(2026, 3, 5, 10, 15, 0, 0, time.UTC)
	got := Format(language.English, Date, tm)
	if got != "2026-03-05" {
		t.Errorf("Format(en, Date) = %q, want %q", got, "2026-03-05")
	}
}

func TestFormatGermanTimeMinute(t *testing.T) {
	tm := time.Date(2026, 3, 5, 10, 15, 0, 0, time.UTC)
	got := Format(language.German, TimeMinute, tm)
	if got != "05.03.2026 10:15" {
		t.Errorf("Format(de, TimeMinute) = %q, want %q", got, "05.03.2026 10:15")
	}
}

func TestFormatDefaultLocaleTime(t *testing.T) {
	tm := time.Date(2026, 3, 5, 10, 15, 30, 0, time.UTC)
	got := Format(language.English, Time, tm)
	if got != "2026-03-05 10:15:30" {
		t.Errorf("Format(en, Time) = %q, want %q", got, "2026-03-05 10:15:30")
	}
}
