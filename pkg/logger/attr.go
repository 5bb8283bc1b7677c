package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error".
// A nil error yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// TicketID records a notification ticket under the key "ticket_id".
// An empty id yields an empty Attr.
func TicketID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("ticket_id", id)
}

// NotificationType records the notification type under the key "notification_type".
// Any fmt.Stringer works, which keeps this package free of domain imports.
func NotificationType(t interface{ String() string }) slog.Attr {
	return slog.String("notification_type", t.String())
}

// Status records an HTTP status code under the key "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Method records an HTTP method under the key "method".
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// Path records a URL path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Duration records d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
