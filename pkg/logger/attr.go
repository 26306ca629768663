package logger

import (
	"log/slog"
)

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Kind records the quantity kind (e.g. "ElectricResistance") under the key "kind".
func Kind(name string) slog.Attr {
	return slog.String("kind", name)
}

// Unit records a unit name under the key "unit".
// If name is empty, it returns an empty Attr.
func Unit(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("unit", name)
}

// Culture records the formatting culture descriptor under the key "culture".
func Culture(name string) slog.Attr {
	return slog.String("culture", name)
}

// Language records a catalog language under the key "lang".
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Languages records a list of catalog languages under the key "languages".
func Languages(langs []string) slog.Attr {
	return slog.Any("languages", langs)
}

// Input records raw user input under the key "input".
func Input(s string) slog.Attr {
	return slog.String("input", s)
}

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
