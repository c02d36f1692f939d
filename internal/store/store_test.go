package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"jalali-picker/internal/calendar"
	"jalali-picker/internal/numeral"
	"jalali-picker/internal/picker"
)

func withEnv(t *testing.T, k, v string, fn func()) {
	t.Helper()
	old, had := os.LookupEnv(k)
	if err := os.Setenv(k, v); err != nil {
		t.Fatalf("setenv %s: %v", k, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(k, old)
		} else {
			_ = os.Unsetenv(k)
		}
	})
	fn()
}

func TestOpen_UsesEnvOverride(t *testing.T) {
	dir := t.TempDir()
	withEnv(t, envConfigDir, dir, func() {
		s, err := Open("")
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if s.Dir != dir {
			t.Fatalf("expected dir %q, got %q", dir, s.Dir)
		}
	})

	s, err := Open("  /tmp/explicit ")
	if err != nil || s.Dir != "/tmp/explicit" {
		t.Fatalf("explicit dir: got %q, %v", s.Dir, err)
	}
}

func TestLoadConfig_MissingFileIsZero(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	cfg, err := s.LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg, picker.Config{}) {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
	if s.ConfigExists() {
		t.Fatalf("expected no config file")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Parallel()

	s := Store{Dir: filepath.Join(t.TempDir(), "nested")}
	cfg := picker.DefaultConfig()
	cfg.Order = []picker.Field{picker.FieldDay, picker.FieldMonth, picker.FieldYear}
	cfg.MainLabel = "تاریخ تولد"
	cfg.Years = picker.YearRange(1398, 1410)

	if err := s.SaveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("config round trip:\n got: %+v\nwant: %+v", got, cfg)
	}

	// Second save keeps a backup of the first.
	cfg.MainLabel = "changed"
	if err := s.SaveConfig(cfg); err != nil {
		t.Fatalf("save 2: %v", err)
	}
	if _, err := os.Stat(s.ConfigPath() + ".bak"); err != nil {
		t.Fatalf("expected backup file: %v", err)
	}
}

func TestSaveConfig_RejectsInvalid(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	cfg := picker.DefaultConfig()
	cfg.Years = []int{1403, 1402}
	var ce *picker.ConfigError
	if err := s.SaveConfig(cfg); !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if s.ConfigExists() {
		t.Fatalf("invalid config should not be written")
	}
}

func TestLoadConfig_Corrupt(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	if err := os.WriteFile(s.ConfigPath(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.LoadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func completeDate(y int, m calendar.Month, d int) picker.Date {
	return picker.Date{
		Year:  &numeral.Numeral{Value: y, Text: numeral.New(y, numeral.Persian).Text},
		Month: &m,
		Day:   &numeral.Numeral{Value: d, Text: numeral.Padded(d, 2, numeral.Persian).Text},
	}
}

func TestHistory_RecordAndRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := Store{Dir: t.TempDir()}
	if _, ok, err := s.Last(ctx); err != nil || ok {
		t.Fatalf("expected empty history, got ok=%v err=%v", ok, err)
	}

	first := completeDate(1403, calendar.Esfand, 30)
	second := completeDate(1402, calendar.Mehr, 1)
	e1, err := s.Record(ctx, first)
	if err != nil {
		t.Fatalf("record 1: %v", err)
	}
	e2, err := s.Record(ctx, second)
	if err != nil {
		t.Fatalf("record 2: %v", err)
	}
	if e2.ID <= e1.ID {
		t.Fatalf("expected increasing ids, got %d then %d", e1.ID, e2.ID)
	}

	last, ok, err := s.Last(ctx)
	if err != nil || !ok {
		t.Fatalf("last: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(last, second) {
		t.Fatalf("last: got %s want %s", last, second)
	}

	all, err := s.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if !reflect.DeepEqual(all[1].Date, first) || all[0].ID != e2.ID {
		t.Fatalf("expected newest first, got %s then %s", all[0].Date, all[1].Date)
	}
	if all[0].CreatedAt.IsZero() {
		t.Fatalf("expected created time")
	}

	limited, err := s.History(ctx, 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("limited history: %d entries, %v", len(limited), err)
	}
}

func TestHistory_RejectsIncomplete(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	d := completeDate(1403, calendar.Tir, 3)
	d.Day = nil
	if _, err := s.Record(context.Background(), d); !errors.Is(err, ErrIncompleteDate) {
		t.Fatalf("expected ErrIncompleteDate, got %v", err)
	}
	bad := completeDate(1403, calendar.Tir, 3)
	m := calendar.Month(14)
	bad.Month = &m
	if _, err := s.Record(context.Background(), bad); !errors.Is(err, calendar.ErrInvalidMonthIndex) {
		t.Fatalf("expected ErrInvalidMonthIndex, got %v", err)
	}

	for _, day := range []int{0, 30, 45} {
		// Esfand 1402 has 29 days.
		if _, err := s.Record(context.Background(), completeDate(1402, calendar.Esfand, day)); !errors.Is(err, ErrDayOutOfRange) {
			t.Fatalf("day %d: expected ErrDayOutOfRange, got %v", day, err)
		}
	}
	if _, ok, err := s.Last(context.Background()); err != nil || ok {
		t.Fatalf("rejected dates must not be stored: ok=%v err=%v", ok, err)
	}
}
