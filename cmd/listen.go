package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/goscales/chord"
	"github.com/jsphweid/goscales/formula"
	scalemidi "github.com/jsphweid/goscales/midi"
	"github.com/jsphweid/goscales/scale"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	listenPort     int
	listenFormulas []string
	listenWait     time.Duration
)

func init() {
	listenCmd.Flags().IntVarP(&listenPort, "port", "p", 0, "MIDI in port number")
	listenCmd.Flags().StringSliceVarP(&listenFormulas, "formula", "f",
		[]string{formula.Major.Name(), formula.NaturalMinor.Name()}, "formulas to match against")
	listenCmd.Flags().DurationVar(&listenWait, "debounce", 300*time.Millisecond, "quiet time before reporting")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Reports the scales fitting the notes played on a MIDI input",
	RunE: func(cmd *cobra.Command, args []string) error {
		formulas, err := parseFormulas(listenFormulas)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return listen(ctx, listenPort, formulas)
	},
}

// liveNotes collects every key pressed since the last full release.
type liveNotes struct {
	mu      sync.Mutex
	on      chord.OnNotes
	phrase  chord.OnNotes
	lastKey string
}

func newLiveNotes() *liveNotes {
	return &liveNotes{on: make(chord.OnNotes), phrase: make(chord.OnNotes)}
}

func (l *liveNotes) press(key uint8) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.on) == 0 {
		l.phrase = make(chord.OnNotes)
	}
	l.on[key] = true
	l.phrase[key] = true
}

func (l *liveNotes) release(key uint8) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.on, key)
}

// changed returns the phrase keys when they differ from the last report.
func (l *liveNotes) changed() (chord.OnNotes, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := chord.CreateChordKey(chord.Keys(l.phrase))
	if key == "" || key == l.lastKey {
		return nil, false
	}
	l.lastKey = key
	res := make(chord.OnNotes, len(l.phrase))
	for k := range l.phrase {
		res[k] = true
	}
	return res, true
}

func report(notes *liveNotes, formulas []formula.Formula) {
	phrase, ok := notes.changed()
	if !ok {
		return
	}
	pcs := scalemidi.KeysToPitchClasses(chord.Keys(phrase))
	matches := scale.Matching(pcs, formulas)

	var names []string
	for _, n := range pcs {
		names = append(names, n.Name())
	}
	fmt.Printf("%v -> %v\n", strings.Join(names, " "), strings.Join(scaleNames(matches), ", "))
}

func listen(ctx context.Context, port int, formulas []formula.Formula) error {
	defer midi.CloseDriver()
	in, err := midi.InPort(port)
	if err != nil {
		return fmt.Errorf("can't open midi in port %v: %w", port, err)
	}
	logrus.WithField("port", in.String()).Info("listening")

	notes := newLiveNotes()
	debounced := debounce.New(listenWait)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			logrus.WithFields(logrus.Fields{"key": key, "velocity": vel}).Debug("note start")
			notes.press(key)
			debounced(func() { report(notes, formulas) })
		case msg.GetNoteEnd(&ch, &key):
			logrus.WithField("key", key).Debug("note end")
			notes.release(key)
		default:
			// ignore
		}
	}, midi.UseSysEx())
	if err != nil {
		return err
	}
	defer stop()

	<-ctx.Done()
	return nil
}
