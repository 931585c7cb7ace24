package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseOperationDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"27.04.2020 19:30:30", time.Date(2020, 4, 27, 19, 30, 30, 0, time.UTC), true},
		{"27.04.2020 19:30", time.Date(2020, 4, 27, 19, 30, 0, 0, time.UTC), true},
		{"27.04.2020", time.Date(2020, 4, 27, 0, 0, 0, 0, time.UTC), true},
		{"2020-04-27 19:30:30", time.Date(2020, 4, 27, 19, 30, 30, 0, time.UTC), true},
		{"2020-04-27", time.Date(2020, 4, 27, 0, 0, 0, 0, time.UTC), true},
		{"  27.04.2020 10:00:00 ", time.Date(2020, 4, 27, 10, 0, 0, 0, time.UTC), true},
		{"31.02.2020 10:00:00", time.Time{}, false},
		{"yesterday", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tc := range cases {
		got, ok := ParseOperationDate(tc.in)
		if ok != tc.ok {
			t.Fatalf("%q: ok=%v, want %v", tc.in, ok, tc.ok)
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("%q: got %v, want %v", tc.in, got.Time, tc.want)
		}
		if !ok && !got.IsEmpty() {
			t.Errorf("%q: expected empty date", tc.in)
		}
	}
}

func TestReferenceDate(t *testing.T) {
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	full := time.Date(2020, 4, 27, 19, 30, 30, 0, time.UTC)

	t.Run("accepted values", func(t *testing.T) {
		cases := []struct {
			name string
			in   any
			want time.Time
		}{
			{"nil means now", nil, now},
			{"time value", full, full},
			{"time pointer", &full, full},
			{"nil time pointer", (*time.Time)(nil), now},
			{"date value", Date{Time: full}, full},
			{"full text", "2020-04-27 19:30:30", full},
			{"day text", "2020-04-27", time.Date(2020, 4, 27, 0, 0, 0, 0, time.UTC)},
		}
		for _, tc := range cases {
			got, err := ReferenceDate(tc.in, now)
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			}
		}
	})

	t.Run("rejected values", func(t *testing.T) {
		for _, in := range []any{"27.04.2020", "2020/04/27", "", 20200427, 3.5, Date{}} {
			if _, err := ReferenceDate(in, now); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ReferenceDate(%#v) error = %v, want ErrInvalidArgument", in, err)
			}
		}
	})
}

func TestParseReference(t *testing.T) {
	if _, err := ParseReference("2020-04-27 19:30:30"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, in := range []string{"2020-04-27", "27.04.2020 19:30:30", "now"} {
		if _, err := ParseReference(in); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseReference(%q) error = %v, want ErrInvalidArgument", in, err)
		}
	}
}

func TestGreeting(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{5, "Доброе утро"},
		{9, "Доброе утро"},
		{11, "Добрый день"},
		{13, "Добрый день"},
		{17, "Добрый вечер"},
		{19, "Добрый вечер"},
		{23, "Доброй ночи"},
		{0, "Доброй ночи"},
		{4, "Доброй ночи"},
	}
	for _, tc := range cases {
		got := Greeting(time.Date(2023, 7, 27, tc.hour, 0, 0, 0, time.UTC))
		if got != tc.want {
			t.Errorf("hour %d: got %q, want %q", tc.hour, got, tc.want)
		}
	}
}
