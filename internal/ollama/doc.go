// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for communicating with a local
// Ollama server: health checks, model listing, and chat in both complete
// and streaming (NDJSON) form.
package ollama
