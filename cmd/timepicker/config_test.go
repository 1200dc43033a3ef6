// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "timepicker")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	if err := ioutil.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig(zap.NewNop().Sugar(), tempDir(t))
	if err := cfg.Load(); err != nil {
		t.Fatalf("Load failed without a config file: %v", err)
	}
	s := cfg.Settings()
	if s.StepMinutes != defaultStepMinutes {
		t.Errorf("got step %d, expected the default %d", s.StepMinutes, defaultStepMinutes)
	}
	if !s.Format24h {
		t.Errorf("got 12-hour labels, expected 24-hour by default")
	}
	if s.InitialTime != "" {
		t.Errorf("got initial time %q, expected none", s.InitialTime)
	}
	if s.WindowWidth != defaultWindowWidth || s.WindowHeight != defaultWindowHeight {
		t.Errorf("got window %dx%d, expected %dx%d",
			s.WindowWidth, s.WindowHeight, defaultWindowWidth, defaultWindowHeight)
	}
}

func TestConfigLoadsFile(t *testing.T) {
	dir := tempDir(t)
	writeConfig(t, dir, `
step_minutes: 15
format_24h: false
initial_time: "09:30"
window:
  width: 640
  height: 200
`)

	cfg := NewConfig(zap.NewNop().Sugar(), dir)
	if err := cfg.Load(); err != nil {
		t.Fatal(err)
	}
	s := cfg.Settings()
	if s.StepMinutes != 15 {
		t.Errorf("got step %d, expected 15", s.StepMinutes)
	}
	if s.Format24h {
		t.Errorf("got 24-hour labels, expected 12-hour")
	}
	if s.InitialTime != "09:30" {
		t.Errorf("got initial time %q, expected %q", s.InitialTime, "09:30")
	}
	if s.WindowWidth != 640 || s.WindowHeight != 200 {
		t.Errorf("got window %dx%d, expected 640x200", s.WindowWidth, s.WindowHeight)
	}
}

func TestConfigFallsBackOnInvalidValues(t *testing.T) {
	dir := tempDir(t)
	writeConfig(t, dir, `
step_minutes: -5
initial_time: "25:99"
window:
  width: 0
  height: -10
`)

	cfg := NewConfig(zap.NewNop().Sugar(), dir)
	if err := cfg.Load(); err != nil {
		t.Fatal(err)
	}
	s := cfg.Settings()
	if s.StepMinutes != defaultStepMinutes {
		t.Errorf("got step %d, expected fallback to %d", s.StepMinutes, defaultStepMinutes)
	}
	if s.InitialTime != "" {
		t.Errorf("got initial time %q, expected it dropped", s.InitialTime)
	}
	if s.WindowWidth != defaultWindowWidth || s.WindowHeight != defaultWindowHeight {
		t.Errorf("got window %dx%d, expected fallback to %dx%d",
			s.WindowWidth, s.WindowHeight, defaultWindowWidth, defaultWindowHeight)
	}
}

func TestConfigRejectsMalformedFile(t *testing.T) {
	dir := tempDir(t)
	writeConfig(t, dir, "step_minutes: [not a number\n")

	cfg := NewConfig(zap.NewNop().Sugar(), dir)
	if err := cfg.Load(); err == nil {
		t.Errorf("expected an error for a malformed config file")
	}
}

func TestSettingsInitialSeconds(t *testing.T) {
	s := Settings{InitialTime: "09:30"}
	if got, want := s.InitialSeconds(), float32(9*3600+30*60); got != want {
		t.Errorf("got %v seconds, expected %v", got, want)
	}

	s.InitialTime = ""
	if got := s.InitialSeconds(); got < 0 || got >= 24*3600 {
		t.Errorf("got %v seconds for the current time, expected a value within the day", got)
	}
}

func TestConfigNotifiesSubscribers(t *testing.T) {
	cfg := NewConfig(zap.NewNop().Sugar(), tempDir(t))
	if err := cfg.Load(); err != nil {
		t.Fatal(err)
	}
	first := cfg.SubscribeToChanges()
	second := cfg.SubscribeToChanges()

	go cfg.onReloaded()

	for i, ch := range []chan Settings{first, second} {
		select {
		case s := <-ch:
			if s.StepMinutes != defaultStepMinutes {
				t.Errorf("consumer %d got step %d, expected the default %d",
					i, s.StepMinutes, defaultStepMinutes)
			}
		case <-time.After(time.Second):
			t.Fatalf("consumer %d was not notified", i)
		}
	}
}
