package main

// dispatchMessage routes one decoded server message into the world state.
// Exactly one handler runs per message; unknown kinds were already rejected
// by decodeServerMessage. Runs on the connection's read goroutine in
// arrival order.
func (g *Game) dispatchMessage(msg interface{}) {
	switch m := msg.(type) {
	case joinGameReply:
		if err := g.world.applyJoinReply(m); err != nil {
			logError("join rejected: %v", err)
			g.setJoinError(err.Error())
		} else {
			g.setJoinError("")
		}
	case playerJoined:
		g.world.applyActorJoined(m)
	case playersMoved:
		g.world.applyActorsMoved(m)
	case playerLeft:
		g.world.applyActorLeft(m)
	}
}
