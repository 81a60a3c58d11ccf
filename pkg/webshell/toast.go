package webshell

import "time"

// ToastStyle is the look of toast notifications.
type ToastStyle struct {
	Background string `json:"background"`
	Color      string `json:"color"`
}

// ToastOptions configures the global toast host.
type ToastOptions struct {
	Position string        `json:"position"`
	Duration time.Duration `json:"-"`
	// DurationMS mirrors Duration for JSON clients.
	DurationMS int64      `json:"duration"`
	Style      ToastStyle `json:"style"`
	RTL        bool       `json:"rtl"`
}

// DefaultToast returns the toast settings of the web client.
func DefaultToast() ToastOptions {
	d := 4000 * time.Millisecond

	return ToastOptions{
		Position:   "top-center",
		Duration:   d,
		DurationMS: d.Milliseconds(),
		Style:      ToastStyle{Background: "#363636", Color: "#fff"},
		RTL:        true,
	}
}
