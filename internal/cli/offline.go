// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "math/rand"

// Canned replies for when Ollama is unreachable. The chat stays usable
// (themes, export, history all work); only generation is down, and nova
// says so in character instead of erroring.
var offlineReplies = []string{
	"I can't reach my brain right now — Ollama isn't running. Try `ollama serve` in another terminal!",
	"Hmm, it's quiet in here. Start Ollama with `ollama serve` and ask me again.",
	"My model is offline. Once `ollama serve` is up I'll have real answers; until then, /theme still works!",
	"No connection to Ollama. I'm running on pure vibes — start the server and I'll do better.",
}

// offlineReply picks a canned response for offline mode.
func offlineReply() string {
	return offlineReplies[rand.Intn(len(offlineReplies))]
}
