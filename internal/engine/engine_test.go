package engine

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/decred/slog"

	"github.com/famish99/doomhal/internal/cdmus"
	"github.com/famish99/doomhal/internal/config"
	"github.com/famish99/doomhal/internal/cvar"
	"github.com/famish99/doomhal/internal/hal"
	"github.com/famish99/doomhal/internal/joystick"
)

// countingJoystick records calls so tests can check the call sequence
type countingJoystick struct {
	inits, shutdowns, updates, binds int
}

func (j *countingJoystick) Init()          { j.inits++ }
func (j *countingJoystick) Shutdown()      { j.shutdowns++ }
func (j *countingJoystick) Update()        { j.updates++ }
func (j *countingJoystick) BindVariables() { j.binds++ }

// failingMusic is a drive whose every transport call reports status 1
type failingMusic struct {
	hal.MusicDevice
	printed bool
}

func newFailingMusic() *failingMusic {
	return &failingMusic{MusicDevice: cdmus.New(nil)}
}

func (m *failingMusic) Init() hal.Status         { return 1 }
func (m *failingMusic) PrintStartup()            { m.printed = true }
func (m *failingMusic) Play(int) hal.Status      { return 1 }
func (m *failingMusic) SetVolume(int) hal.Status { return 1 }

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Engine.TicRate = 1000
	return cfg
}

func newStubEngine(cfg *config.Config) *Engine {
	reg := cvar.NewRegistry()
	return New(cfg, slog.Disabled, cdmus.New(nil), joystick.New(nil, reg), reg)
}

func TestStartupAndShutdown(t *testing.T) {
	e := newStubEngine(testConfig())

	if e.State() != StateStopped {
		t.Fatalf("initial state = %v", e.State())
	}
	if err := e.Startup(); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if e.State() != StateRunning {
		t.Fatalf("state after Startup = %v", e.State())
	}
	if err := e.Startup(); err == nil {
		t.Error("expected error on second Startup")
	}
	e.Shutdown()
	if e.State() != StateStopped {
		t.Fatalf("state after Shutdown = %v", e.State())
	}
	// Second shutdown is a no-op
	e.Shutdown()
}

func TestStartupBindsOnlyEngineCvars(t *testing.T) {
	e := newStubEngine(testConfig())
	if err := e.Startup(); err != nil {
		t.Fatal(err)
	}
	defer e.Shutdown()

	names := e.Cvars().Names()
	want := map[string]bool{"snd_cdmusic": true, "snd_musicvolume": true}
	if len(names) != len(want) {
		t.Fatalf("cvars = %v, want only engine sound cvars", names)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected cvar %q", n)
		}
	}
}

func TestStartupCallSequence(t *testing.T) {
	cfg := testConfig()
	joy := &countingJoystick{}
	e := New(cfg, slog.Disabled, cdmus.New(nil), joy, cvar.NewRegistry())

	if err := e.Startup(); err != nil {
		t.Fatal(err)
	}
	if joy.inits != 1 || joy.binds != 1 {
		t.Errorf("inits=%d binds=%d, want 1 and 1", joy.inits, joy.binds)
	}
	e.Shutdown()
	if joy.shutdowns != 1 {
		t.Errorf("shutdowns=%d, want 1", joy.shutdowns)
	}
}

func TestStartupJoystickDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Joystick.Enabled = false
	joy := &countingJoystick{}
	e := New(cfg, slog.Disabled, cdmus.New(nil), joy, cvar.NewRegistry())

	if err := e.Startup(); err != nil {
		t.Fatal(err)
	}
	e.Shutdown()
	if joy.inits != 0 || joy.shutdowns != 0 {
		t.Errorf("inits=%d shutdowns=%d, want 0", joy.inits, joy.shutdowns)
	}
	if joy.binds != 1 {
		t.Errorf("binds=%d, variables are bound even when disabled", joy.binds)
	}
}

func TestStartupCDInitFailureDisablesMusic(t *testing.T) {
	m := newFailingMusic()
	reg := cvar.NewRegistry()
	e := New(testConfig(), slog.Disabled, m, &countingJoystick{}, reg)

	if err := e.Startup(); err != nil {
		t.Fatalf("Startup should survive CD failure: %v", err)
	}
	if m.printed {
		t.Error("startup banner printed after failed init")
	}
	if v, _ := reg.Get("snd_cdmusic"); v != "0" {
		t.Errorf("snd_cdmusic = %s, want 0", v)
	}
}

func TestRunFrames(t *testing.T) {
	joy := &countingJoystick{}
	e := New(testConfig(), slog.Disabled, cdmus.New(nil), joy, cvar.NewRegistry())

	if _, err := e.RunFrames(context.Background(), 3); err == nil {
		t.Fatal("expected error before Startup")
	}
	if err := e.Startup(); err != nil {
		t.Fatal(err)
	}

	n, err := e.RunFrames(context.Background(), 5)
	if err != nil || n != 5 {
		t.Fatalf("RunFrames = %d, %v", n, err)
	}
	if joy.updates != 5 || e.Frames() != 5 {
		t.Errorf("updates=%d frames=%d, want 5", joy.updates, e.Frames())
	}

	n, err = e.RunFrames(context.Background(), 0)
	if err != nil || n != 0 {
		t.Errorf("RunFrames(0) = %d, %v", n, err)
	}
}

func TestRunFramesCancelled(t *testing.T) {
	cfg := testConfig()
	cfg.Engine.TicRate = 1
	e := newStubEngine(cfg)
	if err := e.Startup(); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	n, err := e.RunFrames(ctx, 100)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if n != 0 {
		t.Errorf("frames = %d, want 0 at 1Hz", n)
	}
}

func TestMusicScenario(t *testing.T) {
	e := newStubEngine(testConfig())
	if err := e.Startup(); err != nil {
		t.Fatal(err)
	}

	if err := e.PlayTrack(5); err != nil {
		t.Fatalf("PlayTrack(5): %v", err)
	}
	if info := e.TrackInfo(5); info != (TrackInfo{}) {
		t.Fatalf("TrackInfo(5) = %+v, want zero disc", info)
	}
	if err := e.StopMusic(); err != nil {
		t.Fatalf("StopMusic: %v", err)
	}
	if err := e.ResumeMusic(); err != nil {
		t.Fatalf("ResumeMusic: %v", err)
	}
	if err := e.SetMusicVolume(-20); err != nil {
		t.Fatalf("SetMusicVolume: %v", err)
	}
	if v, _ := e.Cvars().Get("snd_musicvolume"); v != "-20" {
		t.Errorf("snd_musicvolume = %s, want -20", v)
	}
}

func TestMusicErrors(t *testing.T) {
	e := New(testConfig(), slog.Disabled, newFailingMusic(), &countingJoystick{}, cvar.NewRegistry())

	var se *hal.StatusError
	if err := e.PlayTrack(2); !errors.As(err, &se) || se.Status != 1 {
		t.Errorf("PlayTrack err = %v, want status 1", err)
	}
	if err := e.SetMusicVolume(3); !errors.As(err, &se) {
		t.Errorf("SetMusicVolume err = %v, want StatusError", err)
	}
	if v, _ := e.Cvars().Get("snd_musicvolume"); v != "8" {
		t.Errorf("snd_musicvolume = %s, want unchanged 8", v)
	}
}

func TestRunFramesRejectsUnvalidatedTicRate(t *testing.T) {
	for _, rate := range []int{0, -1, config.MaxTicRate + 1, 2000000000} {
		cfg := testConfig()
		cfg.Engine.TicRate = rate
		e := newStubEngine(cfg)
		if err := e.Startup(); err != nil {
			t.Fatal(err)
		}

		n, err := e.RunFrames(context.Background(), 1)
		if !errors.Is(err, ErrBadTicRate) {
			t.Errorf("tic_rate=%d: err = %v, want ErrBadTicRate", rate, err)
		}
		if n != 0 {
			t.Errorf("tic_rate=%d: frames = %d, want 0", rate, n)
		}
		e.Shutdown()
	}
}

func TestRunFramesConsumesKeyEvents(t *testing.T) {
	e := newStubEngine(testConfig())
	if err := e.Startup(); err != nil {
		t.Fatal(err)
	}
	defer e.Shutdown()

	in := e.Input()
	in.Touch(10, 290, 300, 300)
	in.TouchEnd()

	if _, err := e.RunFrames(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if e.KeyEvents() != 2 {
		t.Errorf("KeyEvents() = %d, want 2", e.KeyEvents())
	}
	if in.Pending() != 0 {
		t.Errorf("Pending() = %d after a frame", in.Pending())
	}
}

func TestSoundCvarsConcurrentAccess(t *testing.T) {
	e := newStubEngine(testConfig())
	if err := e.Startup(); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = e.Cvars().Set(CvarMusicVolume, strconv.Itoa(i))
			_ = e.Cvars().Set(CvarCDMusic, "1")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = e.SetMusicVolume(i)
			_, _ = e.Cvars().Get(CvarMusicVolume)
		}
	}()
	wg.Wait()
	e.Shutdown()

	if err := e.SetMusicVolume(42); err != nil {
		t.Fatal(err)
	}
	if v, _ := e.Cvars().Int(CvarMusicVolume); v != 42 {
		t.Errorf("%s = %d, want 42", CvarMusicVolume, v)
	}
}
