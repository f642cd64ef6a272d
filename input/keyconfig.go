package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidEntry reports a table value that is not exactly one character
var ErrInvalidEntry = errors.New("input: invalid key table entry")

// Character aliases for values that read poorly as bare YAML scalars
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"quote":     '\'',
	"hash":      '#',
}

// keyFile is the on-disk layout of a key table override
type keyFile struct {
	Plain map[int]string `yaml:"plain"`
	Shift map[int]string `yaml:"shift"`
}

// LoadKeyConfig parses YAML key table data into a sparse override table
// Only scancodes present in the document are populated
func LoadKeyConfig(r io.Reader) (*KeyTable, error) {
	var kf keyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&kf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	if err := parseSection("plain", kf.Plain, &kt.Plain); err != nil {
		return nil, err
	}
	if err := parseSection("shift", kf.Shift, &kt.Shift); err != nil {
		return nil, err
	}
	return kt, nil
}

// LoadKeyFile reads a key table override from path and overlays it on the default table
func LoadKeyFile(path string) (*KeyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("keymap open: %w", err)
	}
	defer f.Close()

	override, err := LoadKeyConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	kt := DefaultKeyTable()
	kt.Merge(override)
	return kt, nil
}

func parseSection(section string, data map[int]string, dst *[TableSize]rune) error {
	for code, val := range data {
		if code < 0 || code >= TableSize {
			return fmt.Errorf("[%s] %w: %d", section, ErrUnknownScancode, code)
		}
		r, err := resolveRune(val)
		if err != nil {
			return fmt.Errorf("[%s] scancode %d: %w", section, code, err)
		}
		dst[code] = r
	}
	return nil
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[s]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEntry, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
