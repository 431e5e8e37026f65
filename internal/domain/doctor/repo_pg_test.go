package doctor

import "testing"

func TestTimeConversionRoundTrip(t *testing.T) {
	for _, in := range []string{"00:00:00", "08:00:00", "12:30:45", "23:59:59"} {
		pt := pgTime(in)
		if !pt.Valid {
			t.Fatalf("pgTime(%q) not valid", in)
		}
		if got := timeString(pt); got != in {
			t.Errorf("round trip %q = %q", in, got)
		}
	}
}

func TestPgTimeRejectsGarbage(t *testing.T) {
	if pgTime("8am").Valid {
		t.Error("expected invalid pgtype.Time for malformed input")
	}
}
