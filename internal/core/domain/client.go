package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ClientKind distinguishes the public site from the administrative backend.
type ClientKind string

const (
	// ClientSite is the public-facing client.
	ClientSite ClientKind = "site"
	// ClientAdmin is the administrative client.
	ClientAdmin ClientKind = "admin"
)

// ParseClientKind converts a flag or config value into a ClientKind.
func ParseClientKind(s string) (ClientKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "site", "public", "":
		return ClientSite, nil
	case "admin", "administrator":
		return ClientAdmin, nil
	default:
		return "", zerr.With(ErrInvalidClientKind, "client", s)
	}
}

// ModeSelector chooses which clients the render hook runs for.
type ModeSelector int

const (
	// ModeFrontend runs for the public site only.
	ModeFrontend ModeSelector = iota
	// ModeBackend runs for the administrative client only.
	ModeBackend
	// ModeBoth runs for every client.
	ModeBoth
)

// ParseModeSelector accepts the mode names as well as the numeric values 0, 1 and 2.
func ParseModeSelector(s string) (ModeSelector, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "frontend", "site", "":
		return ModeFrontend, nil
	case "backend", "admin":
		return ModeBackend, nil
	case "both":
		return ModeBoth, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < int(ModeFrontend) || n > int(ModeBoth) {
		return ModeFrontend, zerr.With(ErrInvalidModeSelector, "mode", s)
	}
	return ModeSelector(n), nil
}

// Covers reports whether the mode enables processing for the given client.
func (m ModeSelector) Covers(kind ClientKind) bool {
	switch m {
	case ModeBoth:
		return true
	case ModeBackend:
		return kind == ClientAdmin
	default:
		return kind == ClientSite
	}
}

// String returns the config name of the mode.
func (m ModeSelector) String() string {
	switch m {
	case ModeBackend:
		return "backend"
	case ModeBoth:
		return "both"
	default:
		return "frontend"
	}
}
