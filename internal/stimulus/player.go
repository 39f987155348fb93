package stimulus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ErrNoPlayer means no usable audio player command was found.
var ErrNoPlayer = errors.New("no audio player found")

// DefaultPlayers are tried in order when no player is configured.
var DefaultPlayers = []string{"paplay", "aplay -q", "afplay"}

// PlayerDevice plays tones by rendering each one to a WAV file and handing
// it to an external player command.
type PlayerDevice struct {
	// Player is the command line used to play a file; the file path is
	// appended as the last argument. Empty means try DefaultPlayers.
	Player string

	// KeepDir, when set, receives the rendered files instead of a temp
	// directory that is removed on Close.
	KeepDir string

	Synth  *Synth
	Logger *zap.Logger
}

// Open resolves the player and prepares a scratch directory.
func (d *PlayerDevice) Open(ctx context.Context) (Emitter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	argv, err := resolvePlayer(d.Player)
	if err != nil {
		return nil, &ErrAudioUnavailable{Err: err}
	}

	dir := d.KeepDir
	keep := dir != ""
	if keep {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &ErrAudioUnavailable{Err: fmt.Errorf("create tone dir: %w", err)}
		}
	} else {
		dir, err = os.MkdirTemp("", "hearwise-tones-")
		if err != nil {
			return nil, &ErrAudioUnavailable{Err: fmt.Errorf("create temp dir: %w", err)}
		}
	}

	synth := d.Synth
	if synth == nil {
		synth = NewSynth(DefaultSampleRate, DefaultRamp)
	}
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("audio device opened", zap.Strings("player", argv), zap.String("dir", dir))

	return &playerEmitter{argv: argv, dir: dir, keep: keep, synth: synth, logger: logger}, nil
}

func resolvePlayer(configured string) ([]string, error) {
	candidates := DefaultPlayers
	if strings.TrimSpace(configured) != "" {
		candidates = []string{configured}
	}
	for _, c := range candidates {
		argv := strings.Fields(c)
		if len(argv) == 0 {
			continue
		}
		path, err := exec.LookPath(argv[0])
		if err != nil {
			continue
		}
		argv[0] = path
		return argv, nil
	}
	if len(candidates) == 1 {
		return nil, fmt.Errorf("%w: %q", ErrNoPlayer, configured)
	}
	return nil, ErrNoPlayer
}

type playerEmitter struct {
	argv   []string
	dir    string
	keep   bool
	synth  *Synth
	logger *zap.Logger

	mu     sync.Mutex
	cmd    *exec.Cmd
	seq    int
	wg     sync.WaitGroup
	closed bool
}

func (p *playerEmitter) Emit(ctx context.Context, t Tone) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.New("emitter closed")
	}
	p.killLocked()

	buf, err := p.synth.Render(t)
	if err != nil {
		return err
	}
	p.seq++
	path := filepath.Join(p.dir, fmt.Sprintf("tone-%04d-%s-%.0fhz.wav", p.seq, t.Channel, t.FrequencyHz))
	if err := writeWAVFile(path, buf, p.synth.SampleRate()); err != nil {
		return err
	}

	args := append(append([]string{}, p.argv[1:]...), path)
	cmd := exec.Command(p.argv[0], args...)
	if err := cmd.Start(); err != nil {
		os.Remove(path)
		return fmt.Errorf("start player: %w", err)
	}
	p.cmd = cmd
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := cmd.Wait(); err != nil {
			p.logger.Debug("player exited", zap.String("file", path), zap.Error(err))
		}
		if !p.keep {
			os.Remove(path)
		}
		p.mu.Lock()
		if p.cmd == cmd {
			p.cmd = nil
		}
		p.mu.Unlock()
	}()
	return nil
}

func (p *playerEmitter) Silence() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.killLocked()
	return nil
}

func (p *playerEmitter) killLocked() {
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	p.cmd = nil
}

// Close kills any running player and waits for it to exit.
func (p *playerEmitter) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.killLocked()
	p.mu.Unlock()

	p.wg.Wait()
	if !p.keep {
		if err := os.RemoveAll(p.dir); err != nil {
			return fmt.Errorf("remove tone dir: %w", err)
		}
	}
	return nil
}

func writeWAVFile(path string, s Stereo, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := EncodeWAV(w, s, rate); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush wav: %w", err)
	}
	return f.Close()
}
