package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	client "github.com/hugolgst/rich-go/client"
)

const discordAppID = "1289471034758349021"

var discordReady atomic.Bool

func initDiscordRPC(ctx context.Context) {
	if err := client.Login(discordAppID); err != nil {
		logDebug("discord rpc login: %v", err)
		return
	}
	discordReady.Store(true)
	now := time.Now()
	if err := client.SetActivity(client.Activity{
		State:   "goWorld",
		Details: "Wandering the shared world",
		Timestamps: &client.Timestamps{
			Start: &now,
		},
	}); err != nil {
		logDebug("discord rpc activity: %v", err)
	}
	go func() {
		<-ctx.Done()
		client.Logout()
	}()
}

func updateDiscordPresence(actorCount int) {
	if !discordReady.Load() {
		return
	}
	if err := client.SetActivity(client.Activity{
		State:   fmt.Sprintf("%d wanderers online", actorCount),
		Details: "Wandering the shared world",
	}); err != nil {
		logDebug("discord rpc activity: %v", err)
	}
}
