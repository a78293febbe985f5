package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"
)

var baseDir string

func main() {
	endpoint := flag.String("endpoint", "", "websocket endpoint, e.g. ws://host:8080/ws")
	username := flag.String("name", "", "display name sent with join_game")
	backdrop := flag.String("backdrop", "", "backdrop image path or URL")
	debugLog := flag.Bool("debug", false, "verbose/debug logging")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}

	loadSettings()
	if *endpoint != "" {
		gs.Endpoint = *endpoint
	}
	if *username != "" {
		gs.Username = *username
	}
	if *backdrop != "" {
		gs.Backdrop = *backdrop
	}

	setupLogging(gs.Debug || *debugLog)
	defer syncLogging()
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loader := newImageLoader()
	g := &Game{
		ctx:         ctx,
		world:       newWorld(loader),
		loader:      loader,
		backdropRef: resolveBackdropRef(gs.Backdrop),
		prevDown:    make(map[string]bool),
		prevFocused: true,
	}
	g.conn = newServerConn(gs.Endpoint, gs.Username, g.dispatchMessage)
	g.input = newInputTranslator(g.conn)

	loader.ensureRef(g.backdropRef)
	go initDiscordRPC(ctx)
	g.conn.connect()

	runGame(g)

	g.conn.shutdown()
	saveSettings()
}

// resolveBackdropRef leaves URLs and absolute paths alone and anchors
// relative paths at baseDir.
func resolveBackdropRef(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(baseDir, ref)
}
