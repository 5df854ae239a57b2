package tui

import (
	"os"
	"strings"
)

// ColorProfile is the range of colors a terminal can display.
type ColorProfile uint8

const (
	// ProfileMono displays no colors at all.
	ProfileMono ColorProfile = iota
	// Profile16 displays the basic and bright ANSI colors.
	Profile16
	// Profile256 displays the full ANSI 256 palette.
	Profile256
	// ProfileTrueColor displays 24-bit RGB.
	ProfileTrueColor
)

// String returns the profile name.
func (p ColorProfile) String() string {
	switch p {
	case ProfileMono:
		return "mono"
	case Profile16:
		return "16-color"
	case Profile256:
		return "256-color"
	default:
		return "true-color"
	}
}

// trueColorEnv lists variables set only by terminals known to support 24-bit color.
var trueColorEnv = []string{
	"WT_SESSION",       // Windows Terminal
	"ITERM_SESSION_ID", // iTerm2
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"VTE_VERSION", // GNOME Terminal, Tilix
}

// DetectColorProfile determines the color profile from environment
// variables. It returns Profile16 when nothing more specific is known.
func DetectColorProfile() ColorProfile {
	return detectColorProfile(os.Getenv)
}

func detectColorProfile(getenv func(string) string) ColorProfile {
	if getenv("NO_COLOR") != "" {
		return ProfileMono
	}

	colorterm := strings.ToLower(getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ProfileTrueColor
	}
	for _, key := range trueColorEnv {
		if getenv(key) != "" {
			return ProfileTrueColor
		}
	}

	term := strings.ToLower(getenv("TERM"))
	switch {
	case term == "dumb":
		return ProfileMono
	case strings.Contains(term, "truecolor") || strings.Contains(term, "direct"):
		return ProfileTrueColor
	case strings.Contains(term, "256color"):
		return Profile256
	}
	return Profile16
}

// Convert returns the closest color p can display. Unset and reset colors
// pass through; every color becomes unset under ProfileMono.
func (p ColorProfile) Convert(c Color) Color {
	switch c.Type() {
	case ColorNone, ColorReset:
		return c
	}
	switch p {
	case ProfileMono:
		return NoColor()
	case Profile16:
		if c.Type() == ColorANSI && c.ANSI() < 16 {
			return c
		}
		return nearestANSI16(c)
	case Profile256:
		return c.ToANSI()
	default:
		return c
	}
}

// nearestANSI16 picks the basic palette entry perceptually closest to c.
func nearestANSI16(c Color) Color {
	target := c.colorful()
	best, bestDist := 0, 0.0
	for i := range ansi16RGB {
		d := target.DistanceLab(ANSIColor(uint8(i)).colorful())
		if i == 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return ANSIColor(uint8(best))
}
