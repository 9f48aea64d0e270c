// vista-client — example CLI for the vista SDK.
//
// It joins a domain over the WebRTC data-channel control plane and logs
// the domain and assignment-client state transitions as the session
// progresses. Launch it non-interactively with -url, or with no flags
// for an interactive prompt.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"

	"github.com/vistaverse/vista"
	"github.com/vistaverse/vista/internal/util"
)

var version = "dev"

func main() {
	// Root context — cancelled on Ctrl+C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	urlFlag := flag.String("url", "", "Domain signaling URL (ws:// or wss://)")
	debugMode := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debugMode {
		util.EnableDebug()
	}

	pterm.Info.Println(fmt.Sprintf("vista-client — v%s", version))
	pterm.Println()

	signalingURL := *urlFlag
	if signalingURL == "" {
		signalingURL = askURL()
	} else if _, err := normalizeURL(signalingURL); err != nil {
		util.LogError("%v", err)
		os.Exit(1)
	}

	run(ctx, signalingURL)
	util.LogInfo("session closed")
}

// run joins the domain and logs state changes until interrupted.
func run(ctx context.Context, signalingURL string) {
	contextID := vista.NewContext(vista.Config{})

	domain := vista.NewDomainServer(contextID)
	domain.OnStateChanged(func(s vista.DomainServerState, info string) {
		if info != "" {
			util.LogInfo("domain: %s (%s)", s, info)
			return
		}
		util.LogInfo("domain: %s", s)
	})

	watchMixer := func(name string, state func() vista.AssignmentClientState,
		subscribe func(func(vista.AssignmentClientState))) {
		subscribe(func(s vista.AssignmentClientState) {
			util.LogInfo("%s: %s", name, s)
		})
		util.LogDebug("%s: %s", name, state())
	}

	avatars := vista.NewAvatarMixer(contextID)
	watchMixer("avatar mixer", avatars.State, avatars.OnStateChanged)
	audio := vista.NewAudioMixer(contextID)
	watchMixer("audio mixer", audio.State, audio.OnStateChanged)
	messages := vista.NewMessagesMixer(contextID)
	watchMixer("messages mixer", messages.State, messages.OnStateChanged)

	entities := vista.NewEntityServer(contextID)
	watchMixer("entity server", entities.State, entities.OnStateChanged)
	entities.OnEntityData(func(edit *vista.EntityEdit) {
		util.LogDebug("entity data: %s (%s)", edit.EntityID, edit.Properties.EntityType)
	})

	util.StartStatsReporter(ctx)
	domain.Connect(signalingURL)

	<-ctx.Done()
	domain.Disconnect()
}

// ---------------------------------------------------------------------------
// Helper Functions
// ---------------------------------------------------------------------------

// normalizeURL validates a raw signaling URL string.
func normalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "ws" && u.Scheme != "wss") {
		return "", fmt.Errorf("invalid signaling URL: %s", raw)
	}
	return u.String(), nil
}

// askURL prompts the user for a valid signaling URL until one is entered.
func askURL() string {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Domain signaling URL (e.g. wss://example.com:40102)").
			Show()

		normalized, err := normalizeURL(raw)
		if err == nil {
			pterm.Println()
			return normalized
		}

		pterm.Println()
		util.LogWarning("invalid input: please enter a ws:// or wss:// URL")
	}
}
