package cmd

import (
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/constants"
	"github.com/jsphweid/chromatic/logging"
	"github.com/jsphweid/chromatic/render"
	"github.com/jsphweid/chromatic/sample"
	"github.com/jsphweid/chromatic/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
)

// how long the held notes must stay unchanged before they are identified
const settleTime = 150 * time.Millisecond

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen [port]",
	Short: "Names triads played on a midi input",
	Long: `Listens on a midi input port and names the triad whenever the held notes
settle. The port defaults to CHROMATIC_MIDI_PORT. Needs a build with the
rtmidi tag to reach hardware ports.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port := constants.GetMidiPort()
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid port %v", args[0])
			}
			port = n
		}

		p, err := printer(cmd)
		if err != nil {
			return err
		}
		return listen(cmd, port, p)
	},
}

type heldKeys struct {
	mu   sync.Mutex
	keys map[uint8]bool
}

func newHeldKeys() *heldKeys {
	return &heldKeys{keys: make(map[uint8]bool)}
}

func (h *heldKeys) press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys[key] = true
}

func (h *heldKeys) release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.keys, key)
}

func (h *heldKeys) snapshot() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return util.GetKeysSorted(h.keys)
}

// handle applies a message to held and reports whether it changed anything.
func (h *heldKeys) handle(msg midi.Message) bool {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		h.press(key)
	case msg.GetNoteEnd(&ch, &key):
		h.release(key)
	default:
		return false
	}
	return true
}

func report(p *render.Printer, keys []uint8) {
	if len(keys) == 0 {
		return
	}
	notes := sample.PitchClasses(keys)
	matches := chord.Identify(notes)
	if len(matches) == 0 {
		logging.Debug("no triad", logging.Fields{"notes": chord.CreateChordKey(notes)})
		return
	}
	if err := p.Identification(notes, matches); err != nil {
		logging.Error(err, "could not print chord")
	}
}

func listen(cmd *cobra.Command, port int, p *render.Printer) error {
	defer midi.CloseDriver()

	in, err := midi.InPort(port)
	if err != nil {
		return errors.Wrapf(err, "could not open midi port %v", port)
	}

	held := newHeldKeys()
	debounced := debounce.New(settleTime)
	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		if held.handle(msg) {
			debounced(func() {
				report(p, held.snapshot())
			})
		}
	})
	if err != nil {
		return errors.Wrap(err, "could not listen")
	}
	defer stop()

	logging.Info("listening", logging.Fields{"port": in.String()})
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()
	return nil
}
