package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/harmonykit/chord"
	"github.com/jsphweid/harmonykit/chunk"
	"github.com/jsphweid/harmonykit/pitch"
	"github.com/jsphweid/harmonykit/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	listenPort     int
	listenDebounce time.Duration
)

func init() {
	listenCmd.Flags().IntVarP(&listenPort, "port", "p", 0, "MIDI input port number")
	listenCmd.Flags().DurationVar(&listenDebounce, "debounce", 80*time.Millisecond, "wait this long after the last key change before naming the chord")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the harmonies played on a MIDI input",
	Long:  `Listens to a MIDI input port and names the held chord whenever it settles. Stop with Ctrl-C.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := language()
		if err != nil {
			return err
		}
		ix, err := loadIndex()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return listen(ctx, cmd.OutOrStdout(), ix, lang)
	},
}

// heldNotes tracks the keys currently down. The MIDI driver calls in from its
// own goroutine.
type heldNotes struct {
	mu    sync.Mutex
	notes map[uint8]bool
}

func (h *heldNotes) press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notes[key] = true
}

func (h *heldNotes) release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.notes, key)
}

func (h *heldNotes) snapshot() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return util.SortedKeys(h.notes)
}

func describeHeld(w io.Writer, ix *chunk.Index, notes []uint8, lang pitch.Language) {
	if len(notes) == 0 {
		return
	}
	matches, err := ix.FindNotes(notes)
	if err != nil {
		fmt.Fprintf(w, "lookup failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%-24v %-16s %s\n", notes, chord.CreateChordKey(notes), formatMatches(matches, lang))
}

func listen(ctx context.Context, w io.Writer, ix *chunk.Index, lang pitch.Language) error {
	defer midi.CloseDriver()
	in, err := midi.InPort(listenPort)
	if err != nil {
		return errors.Wrapf(err, "can't find MIDI input port %d", listenPort)
	}

	held := &heldNotes{notes: make(map[uint8]bool)}
	debounced := debounce.New(listenDebounce)
	lookup := func() {
		describeHeld(w, ix, held.snapshot(), lang)
	}

	stopListening, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held.press(key)
			debounced(lookup)
		case msg.GetNoteEnd(&ch, &key):
			held.release(key)
			debounced(lookup)
		}
	})
	if err != nil {
		return errors.Wrap(err, "could not listen")
	}

	fmt.Fprintf(w, "Listening to %v\n", in)
	<-ctx.Done()
	stopListening()
	return nil
}
