package config

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/repl/internal/domain"
)

// ErrUnknownKey is returned by Provider.Set and Provider.Unset for names
// not listed in domain.ConfigKeys.
var ErrUnknownKey = errors.New("unknown config key")

// Provider implements domain.ConfigProvider on top of the rc file. Writes
// hold the config lock for the whole read-modify-write cycle.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set stores value for key, keeping any inline comment on its line.
func (p *Provider) Set(key, value string) error {
	return p.edit(key, func(lines []string) []string {
		lines, _ = Set(lines, key, value)
		return lines
	})
}

// Unset removes key from the file so its default applies again.
func (p *Provider) Unset(key string) error {
	return p.edit(key, func(lines []string) []string {
		lines, _ = Unset(lines, key)
		return lines
	})
}

func (p *Provider) edit(key string, change func([]string) []string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		return WriteLines(change(lines))
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
