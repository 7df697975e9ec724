// Package tme extracts structured records from the public HTML preview
// pages of t.me: channel, bot and group profiles, single message embeds,
// and the most recent messages of a channel.
//
// This package contains domain types, interfaces and the pure
// classification/parsing functions following Ben Johnson's Standard
// Package Layout. Implementations live in subdirectories named after
// their primary dependency (e.g., goquery/, http/, zerolog/).
package tme

// BaseURL is the root of the public preview site.
const BaseURL = "https://t.me"

// UserAgent is the client string sent with every preview page request.
// Preview pages serve the full widget markup only to browser-like agents.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
